package model

import "time"

// User is a registered account. PasswordHash never leaves the service.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	PasswordHash string    `json:"-"`
	PropicURL    *string   `json:"propic_url"`
	CreatedAt    time.Time `json:"-"`
}

// Claims returns the identity carried in tokens issued for u.
func (u User) Claims() IdentityClaims {
	return IdentityClaims{
		UserID:    u.ID,
		Name:      u.Name,
		Surname:   u.Surname,
		PropicURL: u.PropicURL,
	}
}
