package refreshtokens

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medichain/backend/internal/common"
)

func TestMemoryRepository_CreateFindDelete(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, "u1", "tok-1", time.Hour); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	rt, err := repo.Find(ctx, "tok-1")
	if err != nil {
		t.Fatalf("Find error: %v", err)
	}
	if rt.UserID != "u1" {
		t.Fatalf("expected user u1, got %q", rt.UserID)
	}
	if !rt.Expires.After(time.Now()) {
		t.Fatalf("expected expiry in the future, got %v", rt.Expires)
	}

	if err := repo.Delete(ctx, "tok-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.Find(ctx, "tok-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound after delete, got %v", err)
	}
}

func TestMemoryRepository_DeleteByUser(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, "u1", "tok-1", time.Hour); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := repo.Create(ctx, "u1", "tok-2", time.Hour); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := repo.Create(ctx, "u2", "tok-3", time.Hour); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := repo.DeleteByUser(ctx, "u1"); err != nil {
		t.Fatalf("DeleteByUser error: %v", err)
	}

	if _, err := repo.Find(ctx, "tok-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected tok-1 gone, got %v", err)
	}
	if _, err := repo.Find(ctx, "tok-2"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected tok-2 gone, got %v", err)
	}
	if _, err := repo.Find(ctx, "tok-3"); err != nil {
		t.Fatalf("expected tok-3 to survive, got %v", err)
	}
}
