package memdb

import (
	"context"
	"sync"
	"time"

	"procurement-authoring-api/internal/common"
	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

var timeNow = func() time.Time { return time.Now() }

// RfpRepo owns the active and draft collections. Records are only reachable
// through the operations below; reads return copies.
type RfpRepo struct {
	mu     sync.Mutex
	active []entity.RfpItem
	drafts []entity.RfpItem
}

func NewRfpRepo() *RfpRepo {
	return &RfpRepo{
		active: make([]entity.RfpItem, 0),
		drafts: make([]entity.RfpItem, 0),
	}
}

func (r *RfpRepo) AddRfp(ctx context.Context, input *entity.CreateRfpInput) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeNow()
	item := entity.RfpItem{
		Id:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		RfpText:     input.RfpText,
		Status:      common.Active,
		DueDate:     now.AddDate(0, 0, 30).Format(common.DueDateLayout),
		Responses:   0,
		CreatedAt:   now.Format(common.DueDateLayout),
	}
	r.active = append([]entity.RfpItem{item}, r.active...)

	return item.Id, nil
}

func (r *RfpRepo) AddDraft(ctx context.Context, input *entity.CreateDraftInput) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := timeNow().Format(common.DueDateLayout)
	item := entity.RfpItem{
		Id:           uuid.New(),
		Title:        input.Title,
		Description:  input.Description,
		RfpText:      input.RfpText,
		Completeness: input.Completeness,
		Status:       common.Draft,
		DueDate:      common.NotPublished,
		Responses:    0,
		CreatedAt:    now,
		LastEdited:   now,
	}
	r.drafts = append([]entity.RfpItem{item}, r.drafts...)

	return item.Id, nil
}

func (r *RfpRepo) GetRfpById(ctx context.Context, id string) (*entity.RfpItem, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, list := range [][]entity.RfpItem{r.active, r.drafts} {
		for i := range list {
			if list[i].Id == uuidForm {
				item := list[i]
				return &item, nil
			}
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *RfpRepo) UpdateRfp(ctx context.Context, id string, patch *entity.RfpPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return applyPatch(r.active, id, patch, false)
}

func (r *RfpRepo) UpdateDraft(ctx context.Context, id string, patch *entity.RfpPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return applyPatch(r.drafts, id, patch, true)
}

// PublishDraft promotes the draft in one atomic step: the new active record
// and the draft removal become visible together or not at all.
func (r *RfpRepo) PublishDraft(ctx context.Context, id string, now time.Time) (*entity.RfpItem, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.drafts {
		if r.drafts[i].Id != uuidForm {
			continue
		}

		published := r.drafts[i]
		published.Status = common.Active
		published.DueDate = now.AddDate(0, 0, 30).Format(common.DueDateLayout)
		r.active = append([]entity.RfpItem{published}, r.active...)
		r.drafts = append(r.drafts[:i], r.drafts[i+1:]...)

		return &published, nil
	}

	return nil, repo_errors.ErrNotFound
}

func (r *RfpRepo) GetActive(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfpItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return paginate(r.active, pg), nil
}

func (r *RfpRepo) GetDrafts(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfpItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return paginate(r.drafts, pg), nil
}

func applyPatch(list []entity.RfpItem, id string, patch *entity.RfpPatch, refreshLastEdited bool) error {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return repo_errors.ErrNotFound
	}

	for i := range list {
		if list[i].Id != uuidForm {
			continue
		}

		item := &list[i]
		if patch.Title != nil {
			item.Title = *patch.Title
		}
		if patch.Description != nil {
			item.Description = *patch.Description
		}
		if patch.DueDate != nil {
			item.DueDate = *patch.DueDate
		}
		if patch.Responses != nil {
			item.Responses = *patch.Responses
		}
		if patch.Completeness != nil {
			item.Completeness = *patch.Completeness
		}
		if patch.RfpText != nil {
			item.RfpText = *patch.RfpText
		}
		if refreshLastEdited {
			item.LastEdited = timeNow().Format(common.DueDateLayout)
		}

		return nil
	}

	return repo_errors.ErrNotFound
}

func paginate(list []entity.RfpItem, pg *entity.PaginationInput) []entity.RfpItem {
	if pg == nil {
		return append([]entity.RfpItem(nil), list...)
	}

	start := pg.Offset
	if start > len(list) {
		start = len(list)
	}
	end := len(list)
	if pg.Limit > 0 && start+pg.Limit < end {
		end = start + pg.Limit
	}

	return append([]entity.RfpItem(nil), list[start:end]...)
}
