// Package repository declares the storage interfaces the service layer
// depends on. Concrete implementations live in subpackages (sqlite) and in
// test fakes — the service never imports either directly.
package repository

import (
	"context"

	"github.com/sakif/account-service/internal/model"
)

// UserRepository is the persistence contract for User records.
//
// Create returns apperror.ErrConflict if the email is already taken.
// GetByID/GetByEmail return apperror.ErrNotFound when no row matches.
// Update overwrites the full mutable record (last-write-wins — concurrent
// updates to the same user are not serialized here).
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id string) error
}
