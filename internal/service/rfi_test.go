package service

import (
	"context"
	"errors"
	"testing"

	"procurement-authoring-api/internal/common"
	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo"
	"procurement-authoring-api/internal/repo/memdb"

	"github.com/google/uuid"
)

func newTestRfiService() *RfiResponseService {
	return NewRfiResponseService(&repo.Repositories{RfiResponse: memdb.NewRfiResponseRepo()})
}

func addTestResponse(t *testing.T, s *RfiResponseService) *entity.RfiResponseOutputModel {
	t.Helper()

	response, err := s.AddResponse(context.Background(), &entity.CreateRfiResponseInput{
		VendorName: "Acme", Email: "jane@acme.com", Subject: "RNG capabilities",
	})
	if err != nil {
		t.Fatal(err)
	}

	return response
}

func TestRfiResponses_NewResponseStartsAsNew(t *testing.T) {
	s := newTestRfiService()
	response := addTestResponse(t, s)

	if response.Status != common.ResponseNew {
		t.Errorf("expected status %q, got %q", common.ResponseNew, response.Status)
	}
	if response.ReceivedDate == "" {
		t.Error("expected receivedDate set")
	}
}

func TestRfiResponses_Approve(t *testing.T) {
	s := newTestRfiService()
	response := addTestResponse(t, s)

	approved, err := s.ApproveResponse(context.Background(), response.Id)
	if err != nil {
		t.Fatal(err)
	}
	if approved.Status != common.ResponseApproved {
		t.Errorf("expected status %q, got %q", common.ResponseApproved, approved.Status)
	}
}

func TestRfiResponses_GradeDoesNotChangeStatus(t *testing.T) {
	s := newTestRfiService()
	response := addTestResponse(t, s)

	llm, user := 85, 70
	graded, err := s.GradeResponse(context.Background(), response.Id, &llm, &user)
	if err != nil {
		t.Fatal(err)
	}
	if graded.LlmScore == nil || *graded.LlmScore != 85 {
		t.Errorf("expected llm score 85, got %v", graded.LlmScore)
	}
	if graded.UserScore == nil || *graded.UserScore != 70 {
		t.Errorf("expected user score 70, got %v", graded.UserScore)
	}
	if graded.Status != common.ResponseNew {
		t.Errorf("expected scoring to leave status untouched, got %q", graded.Status)
	}
}

func TestRfiResponses_UnknownId(t *testing.T) {
	s := newTestRfiService()

	_, err := s.ApproveResponse(context.Background(), uuid.NewString())
	if !errors.Is(err, ErrResponseNotFound) {
		t.Errorf("expected ErrResponseNotFound, got %v", err)
	}
}
