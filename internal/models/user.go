// Package models defines the persistent data types of the vault.
package models

// User is a registered account. Password is stored as plain text, matching
// the source design; see DESIGN.md for the security trade-off.
type User struct {
	ID           int64
	Username     string
	Password     string
	PasswordHint string
}
