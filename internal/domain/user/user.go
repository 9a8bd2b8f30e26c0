// Package user defines the account domain entities.
package user

import "time"

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Favorites    Favorites `json:"favorites"`
	Created      time.Time `json:"created"`
}

// Favorites holds the ids a user has bookmarked.
type Favorites struct {
	Characters []string `json:"characters"`
	Combos     []string `json:"combos"`
}

// Profile is the public projection of a user embedded in auth tokens and
// API responses.
type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// PublicProfile strips credential fields from a user.
func (u *User) PublicProfile() *Profile {
	return &Profile{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	}
}
