package domain_models

// User is kept for compatibility with the site's account table. PasswordHash
// is a bcrypt hash and is never serialized.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
