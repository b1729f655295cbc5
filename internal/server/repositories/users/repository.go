// Package users implements the credential store: persistent user records
// keyed by id with a unique, case-insensitive email.
package users

import (
	"context"

	"github.com/medichain/backend/internal/server/models"
)

type Repository interface {
	// Create inserts a new user record. It returns
	// common.ErrorEmailAlreadyExists if a record with the same email
	// (case-insensitive) already exists, even when a concurrent insert
	// won a race after an earlier existence check.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByEmail looks a user up by email, case-insensitively.
	// Returns common.ErrorNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID looks a user up by id.
	// Returns common.ErrorNotFound if no such user exists.
	FindByID(ctx context.Context, id string) (*models.User, error)
}
