package model

// IdentityClaims is the payload of every bearer token this service issues.
type IdentityClaims struct {
	UserID    string  `json:"user_id"`
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	PropicURL *string `json:"propic_url,omitempty"`
}
