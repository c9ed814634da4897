// internal/models/user.go
package models

import "strings"

// AdminEmail is the one address granted admin privileges at login.
const AdminEmail = "admin@example.com"

type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

// DisplayNameFromEmail derives a display name from the email local part,
// matching what login synthesizes when no name was provided.
func DisplayNameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
