// Package refreshtokens persists issued refresh tokens so that they can be
// rotated on use and revoked on logout.
package refreshtokens

import (
	"context"
	"time"

	"github.com/medichain/backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, userID string, token string, validity time.Duration) error
	Find(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
	// DeleteByUser removes every refresh token belonging to the user.
	// Used by logout.
	DeleteByUser(ctx context.Context, userID string) error
}
