package domain

import "errors"

var ErrInvalidID = errors.New("invalid identifier")
var ErrKingdomNotFound = errors.New("kingdom not found")
var ErrClanNotFound = errors.New("clan not found")
var ErrMemberNotFound = errors.New("member not found")

// KingdomSummary is the list view of a kingdom. ClanCount is derived by
// counting the kingdom's clans at read time; it is never stored.
type KingdomSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ClanCount int    `json:"clan_count"`
}

// Kingdom is the stored kingdom record. Only the name is persisted.
type Kingdom struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// KingdomDetail is a kingdom hydrated with its full clan list. Clans
// reference their kingdom by value only; nothing enforces the link.
type KingdomDetail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ClanCount int    `json:"clan_count"`
	Clans     []Clan `json:"clans"`
}
