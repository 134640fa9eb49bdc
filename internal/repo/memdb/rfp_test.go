package memdb

import (
	"context"
	"errors"
	"testing"
	"time"

	"procurement-authoring-api/internal/common"
	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo/repo_errors"
)

func TestRfpRepo_PublishDraftAtomicMove(t *testing.T) {
	repo := NewRfpRepo()
	ctx := context.Background()

	draftId, err := repo.AddDraft(ctx, &entity.CreateDraftInput{Title: "Draft", Completeness: 100})
	if err != nil {
		t.Fatal(err)
	}

	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	published, err := repo.PublishDraft(ctx, draftId.String(), now)
	if err != nil {
		t.Fatal(err)
	}

	if published.Status != common.Active {
		t.Errorf("expected status %q, got %q", common.Active, published.Status)
	}
	if published.DueDate != "Sep 30, 2026" {
		t.Errorf("expected due date 30 days out, got %q", published.DueDate)
	}
	if published.Id != draftId {
		t.Error("expected the draft's fields carried over, id included")
	}

	active, _ := repo.GetActive(ctx, nil)
	drafts, _ := repo.GetDrafts(ctx, nil)
	if len(active) != 1 || len(drafts) != 0 {
		t.Errorf("expected 1 active and 0 drafts, got %d and %d", len(active), len(drafts))
	}
}

func TestRfpRepo_PublishUnknownDraft(t *testing.T) {
	repo := NewRfpRepo()

	_, err := repo.PublishDraft(context.Background(), "b2c1a018-0000-4000-8000-000000000000", time.Now())
	if !errors.Is(err, repo_errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRfpRepo_PrependsNewestFirst(t *testing.T) {
	repo := NewRfpRepo()
	ctx := context.Background()

	if _, err := repo.AddRfp(ctx, &entity.CreateRfpInput{Title: "First"}); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.AddRfp(ctx, &entity.CreateRfpInput{Title: "Second"}); err != nil {
		t.Fatal(err)
	}

	active, err := repo.GetActive(ctx, nil)
	if err != nil {
		t.Fatal(err)
	}
	if active[0].Title != "Second" || active[1].Title != "First" {
		t.Errorf("expected newest record first, got %q then %q", active[0].Title, active[1].Title)
	}
}

func TestRfpRepo_UpdateDraftRefreshesLastEdited(t *testing.T) {
	repo := NewRfpRepo()
	ctx := context.Background()

	created := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	edited := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	restore := timeNow
	defer func() { timeNow = restore }()

	timeNow = func() time.Time { return created }
	draftId, err := repo.AddDraft(ctx, &entity.CreateDraftInput{Title: "Draft"})
	if err != nil {
		t.Fatal(err)
	}

	timeNow = func() time.Time { return edited }
	title := "Renamed"
	if err := repo.UpdateDraft(ctx, draftId.String(), &entity.RfpPatch{Title: &title}); err != nil {
		t.Fatal(err)
	}

	item, err := repo.GetRfpById(ctx, draftId.String())
	if err != nil {
		t.Fatal(err)
	}
	if item.LastEdited != "Mar 15, 2026" {
		t.Errorf("expected refreshed lastEdited, got %q", item.LastEdited)
	}
	if item.CreatedAt != "Jan 1, 2026" {
		t.Errorf("expected createdAt untouched, got %q", item.CreatedAt)
	}
}

func TestRfpRepo_IdNeverInBothCollections(t *testing.T) {
	repo := NewRfpRepo()
	ctx := context.Background()

	draftId, err := repo.AddDraft(ctx, &entity.CreateDraftInput{Title: "Draft", Completeness: 100})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := repo.PublishDraft(ctx, draftId.String(), time.Now()); err != nil {
		t.Fatal(err)
	}

	active, _ := repo.GetActive(ctx, nil)
	drafts, _ := repo.GetDrafts(ctx, nil)
	for _, d := range drafts {
		for _, a := range active {
			if d.Id == a.Id {
				t.Errorf("id %s present in both collections", d.Id)
			}
		}
	}

	// Publishing the same id again is not possible: it is gone from drafts.
	_, err = repo.PublishDraft(ctx, draftId.String(), time.Now())
	if !errors.Is(err, repo_errors.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second publish, got %v", err)
	}
}
