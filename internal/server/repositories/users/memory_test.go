package users

import (
	"context"
	"errors"
	"testing"

	"github.com/medichain/backend/internal/common"
	"github.com/medichain/backend/internal/server/models"
)

func TestMemoryRepository_CreateAndFind(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	u, err := repo.Create(ctx, &models.User{ID: "u1", Email: "Alice@Test.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.Email != "alice@test.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}

	got, err := repo.FindByEmail(ctx, "ALICE@test.COM")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if got.ID != "u1" {
		t.Fatalf("expected id u1, got %q", got.ID)
	}

	got, err = repo.FindByID(ctx, "u1")
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	if got.Email != "alice@test.com" {
		t.Fatalf("unexpected email %q", got.Email)
	}
}

func TestMemoryRepository_DuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Create(ctx, &models.User{ID: "u1", Email: "a@b.com", PasswordHash: "h"}); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err := repo.Create(ctx, &models.User{ID: "u2", Email: "A@B.com", PasswordHash: "h"})
	if !errors.Is(err, common.ErrorEmailAlreadyExists) {
		t.Fatalf("expected ErrorEmailAlreadyExists, got %v", err)
	}
}

func TestMemoryRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "nobody@test.com"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
	if _, err := repo.FindByID(ctx, "missing"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
