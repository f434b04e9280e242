package service

import (
	"github.com/google/uuid"
	"github.com/sangkips/ledger-api/pkg/apperror"
)

// Actor identifies the caller of a service operation. It is built once per
// request by the HTTP layer and passed explicitly to every call.
type Actor struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
}

// CanAccess reports whether the actor may act on a record owned by ownerID
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsSuperAdmin || a.UserID == ownerID
}

// ownerFilter returns nil for super admins so list queries are unfiltered
func (a Actor) ownerFilter() *uuid.UUID {
	if a.IsSuperAdmin {
		return nil
	}
	id := a.UserID
	return &id
}

func (a Actor) authorize(ownerID uuid.UUID) error {
	if !a.CanAccess(ownerID) {
		return apperror.ErrForbidden
	}
	return nil
}
