package api

// TaskRequest is the body of the create and update endpoints.
// Description is a pointer so a missing field fails validation while an
// empty string is accepted.
type TaskRequest struct {
	Description *string `json:"description" validate:"required"`
}

// RootResponse is the body served at "/".
type RootResponse struct {
	Hello string `json:"Hello"`
}
