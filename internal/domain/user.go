package domain

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an account that can sign in.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Role         string    `json:"role" bson:"role"`
	Image        string    `json:"image,omitempty" bson:"image,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// ValidRoles contains all valid user roles.
var ValidRoles = []string{RoleUser, RoleAdmin}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// AsAuthor returns the public author projection of the user.
func (u *User) AsAuthor() *Author {
	return &Author{ID: u.ID, Name: u.Name, Image: u.Image}
}

// Session is a server-side login session identified by an opaque token.
type Session struct {
	Token     string    `json:"token" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expiresAt"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Expired reports whether the session is no longer valid at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
