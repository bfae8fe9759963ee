package user

import "time"

// DefaultEmail is stored when the identity provider supplies no email.
const DefaultEmail = "unknown@example.com"

// User is the local record of an identity provider subject.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile is what a verified identity knows about its user.
type Profile struct {
	ID    string
	Email *string
	Name  *string
}
