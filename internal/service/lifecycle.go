package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"procurement-authoring-api/internal/common"
	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo"
	"procurement-authoring-api/internal/repo/repo_errors"
)

type LifecycleService struct {
	rfpRepo     repo.Rfp
	sessionRepo repo.Session
}

func NewLifecycleService(repos *repo.Repositories) *LifecycleService {
	return &LifecycleService{
		rfpRepo:     repos.Rfp,
		sessionRepo: repos.Session,
	}
}

func (s *LifecycleService) List(ctx context.Context, pg *entity.PaginationInput) (*entity.RfpCollectionsOutputModel, error) {
	active, err := s.rfpRepo.GetActive(ctx, pg)
	if err != nil {
		return nil, err
	}

	drafts, err := s.rfpRepo.GetDrafts(ctx, pg)
	if err != nil {
		return nil, err
	}

	return &entity.RfpCollectionsOutputModel{
		Active: mapRfps(active),
		Drafts: mapRfps(drafts),
	}, nil
}

func (s *LifecycleService) AddRfp(ctx context.Context, input *entity.CreateRfpInput) (*entity.RfpOutputModel, error) {
	id, err := s.rfpRepo.AddRfp(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.getRfp(ctx, id.String())
}

func (s *LifecycleService) AddDraft(ctx context.Context, input *entity.CreateDraftInput) (*entity.RfpOutputModel, error) {
	id, err := s.rfpRepo.AddDraft(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.getRfp(ctx, id.String())
}

func (s *LifecycleService) UpdateRfp(ctx context.Context, rfpId string, patch *entity.RfpPatch) (*entity.RfpOutputModel, error) {
	if err := s.rfpRepo.UpdateRfp(ctx, rfpId, patch); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRfpNotFound
		}

		return nil, err
	}

	return s.getRfp(ctx, rfpId)
}

func (s *LifecycleService) UpdateDraft(ctx context.Context, draftId string, patch *entity.RfpPatch) (*entity.RfpOutputModel, error) {
	if err := s.rfpRepo.UpdateDraft(ctx, draftId, patch); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrDraftNotFound
		}

		return nil, err
	}

	return s.getRfp(ctx, draftId)
}

// PublishDraft promotes a draft to the active collection. An unknown id is
// a silent no-op (nil, nil): the caller cannot hold a reference to an id it
// did not create. A draft below 100 completeness is refused.
func (s *LifecycleService) PublishDraft(ctx context.Context, draftId string) (*entity.RfpOutputModel, error) {
	draft, err := s.rfpRepo.GetRfpById(ctx, draftId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	if draft.Status != common.Draft {
		return nil, nil
	}
	if draft.Completeness < 100 {
		return nil, ErrDraftNotComplete
	}

	published, err := s.rfpRepo.PublishDraft(ctx, draftId, time.Now())
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return mapRfp(published), nil
}

// SaveDraftFromSession snapshots the wizard session into a saved draft,
// regardless of how complete the session is. Only available on steps 2-6.
func (s *LifecycleService) SaveDraftFromSession(ctx context.Context, sessionId string) (*entity.RfpOutputModel, error) {
	sess, err := s.sessionRepo.GetSession(ctx, sessionId)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrSessionNotFound
		}

		return nil, err
	}

	if !canSaveDraft(sess) {
		return nil, ErrCannotSaveDraft
	}

	sub := buildSubmission(sess)
	title := strings.TrimSpace(sub.Title)
	if title == "" {
		title = "Untitled RFP"
	}

	input := &entity.CreateDraftInput{
		Title:        title,
		Description:  draftDescription(sub),
		RfpText:      sess.DraftText,
		Completeness: CompletenessScore(sub),
	}

	return s.AddDraft(ctx, input)
}

func (s *LifecycleService) getRfp(ctx context.Context, id string) (*entity.RfpOutputModel, error) {
	item, err := s.rfpRepo.GetRfpById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrRfpNotFound
		}

		return nil, err
	}

	return mapRfp(item), nil
}

func draftDescription(sub *entity.RfpSubmission) string {
	if sub.CategoryName == "" {
		return "Procurement request in progress"
	}

	return fmt.Sprintf("Procurement request for %s", sub.CategoryName)
}

// CompletenessScore is the fraction of required sections populated, 0-100.
func CompletenessScore(sub *entity.RfpSubmission) int {
	checks := []bool{
		strings.TrimSpace(sub.Title) != "",
		sub.SelectedCategoryId != "",
		len(sub.Attributes) > 0,
		len(sub.Distribution) > 0,
		len(sub.Timeline) > 0,
	}

	done := 0
	for _, ok := range checks {
		if ok {
			done++
		}
	}

	return done * 100 / len(checks)
}
