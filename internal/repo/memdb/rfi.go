package memdb

import (
	"context"
	"sync"

	"procurement-authoring-api/internal/common"
	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

type RfiResponseRepo struct {
	mu        sync.Mutex
	responses []entity.RfiResponse
}

func NewRfiResponseRepo() *RfiResponseRepo {
	return &RfiResponseRepo{responses: make([]entity.RfiResponse, 0)}
}

func (r *RfiResponseRepo) CreateResponse(ctx context.Context, input *entity.CreateRfiResponseInput) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	response := entity.RfiResponse{
		Id:           uuid.New(),
		VendorName:   input.VendorName,
		Email:        input.Email,
		ContactEmail: input.ContactEmail,
		Subject:      input.Subject,
		Category:     input.Category,
		CompanyId:    input.CompanyId,
		Status:       input.Status,
		ReceivedDate: timeNow().Format(common.DueDateLayout),
	}
	r.responses = append([]entity.RfiResponse{response}, r.responses...)

	return response.Id, nil
}

func (r *RfiResponseRepo) GetResponseById(ctx context.Context, id string) (*entity.RfiResponse, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.responses {
		if r.responses[i].Id == uuidForm {
			response := r.responses[i]
			return &response, nil
		}
	}

	return nil, repo_errors.ErrNotFound
}

func (r *RfiResponseRepo) GetResponses(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfiResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.responses
	if pg != nil {
		start := pg.Offset
		if start > len(list) {
			start = len(list)
		}
		end := len(list)
		if pg.Limit > 0 && start+pg.Limit < end {
			end = start + pg.Limit
		}
		list = list[start:end]
	}

	return append([]entity.RfiResponse(nil), list...), nil
}

func (r *RfiResponseRepo) UpdateResponseStatus(ctx context.Context, id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	response, err := r.find(id)
	if err != nil {
		return err
	}
	response.Status = status

	return nil
}

func (r *RfiResponseRepo) UpdateResponseScores(ctx context.Context, id string, llmScore, userScore *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	response, err := r.find(id)
	if err != nil {
		return err
	}
	if llmScore != nil {
		v := *llmScore
		response.LlmScore = &v
	}
	if userScore != nil {
		v := *userScore
		response.UserScore = &v
	}

	return nil
}

func (r *RfiResponseRepo) find(id string) (*entity.RfiResponse, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	for i := range r.responses {
		if r.responses[i].Id == uuidForm {
			return &r.responses[i], nil
		}
	}

	return nil, repo_errors.ErrNotFound
}
