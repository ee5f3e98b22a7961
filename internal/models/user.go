package models

// User is an account owner. The password hash never leaves the repository
// layer.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
