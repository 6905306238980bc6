// Package entity contains the core business objects of the project.
package entity

import "github.com/google/uuid"

// PrincipalKind tells the two authenticated audiences apart.
type PrincipalKind string

const (
	PrincipalUser  PrincipalKind = "user"
	PrincipalAdmin PrincipalKind = "admin"
)

// Principal is the authenticated caller of a request. A principal is either a
// seller (User) or a platform administrator (Admin), never both.
type Principal struct {
	Kind PrincipalKind `json:"kind"`
	ID   uuid.UUID     `json:"id"`
}

// UserPrincipal builds a seller principal.
func UserPrincipal(id uuid.UUID) Principal {
	return Principal{Kind: PrincipalUser, ID: id}
}

// AdminPrincipal builds an administrator principal.
func AdminPrincipal(id uuid.UUID) Principal {
	return Principal{Kind: PrincipalAdmin, ID: id}
}

// AsUser returns the seller id when the principal is a user.
func (p Principal) AsUser() (uuid.UUID, bool) {
	if p.Kind != PrincipalUser || p.ID == uuid.Nil {
		return uuid.Nil, false
	}

	return p.ID, true
}

// AsAdmin returns the administrator id when the principal is an admin.
func (p Principal) AsAdmin() (uuid.UUID, bool) {
	if p.Kind != PrincipalAdmin || p.ID == uuid.Nil {
		return uuid.Nil, false
	}

	return p.ID, true
}

// IsZero reports whether no principal was set.
func (p Principal) IsZero() bool {
	return p.Kind == "" || p.ID == uuid.Nil
}

// ParsePrincipalKind validates a kind read from a token claim.
func ParsePrincipalKind(s string) (PrincipalKind, bool) {
	switch PrincipalKind(s) {
	case PrincipalUser:
		return PrincipalUser, true
	case PrincipalAdmin:
		return PrincipalAdmin, true
	default:
		return "", false
	}
}
