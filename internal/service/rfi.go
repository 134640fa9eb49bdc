package service

import (
	"context"
	"errors"

	"procurement-authoring-api/internal/common"
	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo"
	"procurement-authoring-api/internal/repo/repo_errors"
)

type RfiResponseService struct {
	rfiRepo repo.RfiResponse
}

func NewRfiResponseService(repos *repo.Repositories) *RfiResponseService {
	return &RfiResponseService{rfiRepo: repos.RfiResponse}
}

func (s *RfiResponseService) List(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfiResponseOutputModel, error) {
	responses, err := s.rfiRepo.GetResponses(ctx, pg)
	if err != nil {
		return nil, err
	}

	return mapRfiResponses(responses), nil
}

func (s *RfiResponseService) AddResponse(ctx context.Context, input *entity.CreateRfiResponseInput) (*entity.RfiResponseOutputModel, error) {
	input.Status = common.ResponseNew
	id, err := s.rfiRepo.CreateResponse(ctx, input)
	if err != nil {
		return nil, err
	}

	return s.getResponse(ctx, id.String())
}

func (s *RfiResponseService) ApproveResponse(ctx context.Context, responseId string) (*entity.RfiResponseOutputModel, error) {
	return s.setStatus(ctx, responseId, common.ResponseApproved)
}

func (s *RfiResponseService) RejectResponse(ctx context.Context, responseId string) (*entity.RfiResponseOutputModel, error) {
	return s.setStatus(ctx, responseId, common.ResponseRejected)
}

// GradeResponse sets the scoring fields. Scores are independent of status
// and never change it.
func (s *RfiResponseService) GradeResponse(ctx context.Context, responseId string, llmScore, userScore *int) (*entity.RfiResponseOutputModel, error) {
	if err := s.rfiRepo.UpdateResponseScores(ctx, responseId, llmScore, userScore); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrResponseNotFound
		}

		return nil, err
	}

	return s.getResponse(ctx, responseId)
}

func (s *RfiResponseService) setStatus(ctx context.Context, responseId string, status string) (*entity.RfiResponseOutputModel, error) {
	if err := s.rfiRepo.UpdateResponseStatus(ctx, responseId, status); err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrResponseNotFound
		}

		return nil, err
	}

	return s.getResponse(ctx, responseId)
}

func (s *RfiResponseService) getResponse(ctx context.Context, id string) (*entity.RfiResponseOutputModel, error) {
	response, err := s.rfiRepo.GetResponseById(ctx, id)
	if err != nil {
		if errors.Is(err, repo_errors.ErrNotFound) {
			return nil, ErrResponseNotFound
		}

		return nil, err
	}

	return mapRfiResponse(response), nil
}
