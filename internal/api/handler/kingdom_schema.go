package handler

// errorResponse documents the standard error envelope in swagger output.
// Rendering is owned by the central HTTP error handler.
type errorResponse struct {
	Error string `json:"error"`
}

type newKingdomRequest struct {
	Name string `json:"name" validate:"required"`
}

type newKingdomResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type newClanRequest struct {
	ClanName    string `json:"clan_name" validate:"required"`
	Description string `json:"description"`
}
