package domain

// User models a registered account. PasswordHash never leaves the server.
type User struct {
	ID           int64   `json:"userId"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
}

// UserSummary is the public listing view of a user.
type UserSummary struct {
	ID       int64  `json:"userId"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Summary returns the listing view of u.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Username: u.Username}
}
