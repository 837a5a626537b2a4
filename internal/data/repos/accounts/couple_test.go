package accounts_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/evermore-apps/evermore-backend/internal/data/repos/accounts"
	"github.com/evermore-apps/evermore-backend/internal/data/repos/testutil"
	types "github.com/evermore-apps/evermore-backend/internal/domain"
)

func TestCoupleRepo_CreateAndLookup(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := accounts.NewCoupleRepo(db, testutil.Logger(t))
	ctx := context.Background()

	slug := "ada-and-ben-" + uuid.New().String()[:8]
	email := slug + "@example.com"
	in := []*types.Couple{{
		ID:         uuid.New(),
		Email:      email,
		Password:   "hashed",
		PartnerOne: "Ada",
		PartnerTwo: "Ben",
		Slug:       slug,
	}}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	byEmail, err := repo.GetByEmails(ctx, tx, []string{email})
	if err != nil || len(byEmail) != 1 {
		t.Fatalf("get by email: %v (%d)", err, len(byEmail))
	}
	bySlug, err := repo.GetBySlugs(ctx, tx, []string{slug})
	if err != nil || len(bySlug) != 1 {
		t.Fatalf("get by slug: %v (%d)", err, len(bySlug))
	}
	if bySlug[0].PartnerOne != "Ada" || bySlug[0].PartnerTwo != "Ben" {
		t.Fatalf("unexpected partners: %+v", bySlug[0])
	}
}

func TestCoupleRepo_ExistsChecks(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := accounts.NewCoupleRepo(db, testutil.Logger(t))
	ctx := context.Background()

	slug := "exists-" + uuid.New().String()[:8]
	email := slug + "@example.com"
	in := []*types.Couple{{ID: uuid.New(), Email: email, Password: "x", PartnerOne: "A", PartnerTwo: "B", Slug: slug}}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}

	ok, err := repo.EmailExists(ctx, tx, email)
	if err != nil || !ok {
		t.Fatalf("expected email to exist: %v %v", ok, err)
	}
	ok, err = repo.SlugExists(ctx, tx, slug)
	if err != nil || !ok {
		t.Fatalf("expected slug to exist: %v %v", ok, err)
	}
	ok, err = repo.EmailExists(ctx, tx, "nobody@example.com")
	if err != nil || ok {
		t.Fatalf("expected missing email: %v %v", ok, err)
	}
}

func TestCoupleRepo_DeleteHidesCouple(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := accounts.NewCoupleRepo(db, testutil.Logger(t))
	ctx := context.Background()

	id := uuid.New()
	slug := "gone-" + uuid.New().String()[:8]
	in := []*types.Couple{{ID: id, Email: slug + "@example.com", Password: "x", PartnerOne: "A", PartnerTwo: "B", Slug: slug}}
	if _, err := repo.Create(ctx, tx, in); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, tx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected soft-deleted couple to be hidden, got %d", len(got))
	}
}
