package domain

import "time"

// Clan is a group owned by exactly one kingdom. Army members live only as
// elements of the embedded array; there is no standalone member collection.
type Clan struct {
	ID          string       `json:"id"`
	KingdomID   string       `json:"kingdom_id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	ArmyMembers []ArmyMember `json:"army_members"`
}

// ArmyMember is embedded inside a clan document but remains addressable by
// its own identifier. Deleting the last clan that embeds a member erases the
// member with no trace elsewhere.
type ArmyMember struct {
	ID               string    `json:"id"`
	Nickname         string    `json:"nickname"`
	Email            string    `json:"email"`
	Password         string    `json:"password"`
	Rank             string    `json:"rank"`
	MemberOf         []string  `json:"member_of"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registration_date"`
	LastLogin        time.Time `json:"last_login"`
	Description      string    `json:"description"`
	Phone            string    `json:"phone"`
	ImageAccess      bool      `json:"image_access"`
	InfoAccess       bool      `json:"info_access"`
	ManageAccess     bool      `json:"manage_access"`
	MediaAccess      bool      `json:"media_access"`
}
