// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Identity

// Role is the authorization level carried by a verified marker.
type Role string

// RoleAdmin is the only role. Every admin session is equally privileged.
const RoleAdmin Role = "admin"

// Identity describes who a verified marker speaks for.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Admin returns the identity descriptor for the configured admin account.
func Admin(email string) *Identity {
	return &Identity{Email: email, Role: RoleAdmin}
}
