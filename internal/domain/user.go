package domain

// GuestUserID is the bucket guest-mode requests read and write. Guest items
// live in ephemeral storage and are not tied to an account.
const GuestUserID = "guest"

// User represents a registered account
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
