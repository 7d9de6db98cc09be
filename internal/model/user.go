package model

// User is a reference to an account as it appears inside task payloads
// (owner, assignees, comment authors). Only the fields the service embeds.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}
