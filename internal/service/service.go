package service

import (
	"context"

	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo"
)

type Diagnostics interface {
	Ping() error
}

type Wizard interface {
	CreateSession(ctx context.Context) (*entity.WizardSession, error)
	GetSession(ctx context.Context, sessionId string) (*entity.WizardSession, error)
	GetState(ctx context.Context, sessionId string) (*entity.WizardStateOutputModel, error)
	Next(ctx context.Context, sessionId string) (*entity.WizardStateOutputModel, error)
	Previous(ctx context.Context, sessionId string) (*entity.WizardStateOutputModel, error)

	SetTitle(ctx context.Context, sessionId string, title string) error
	SelectCategory(ctx context.Context, sessionId string, categoryId string) error
	ToggleSubcategory(ctx context.Context, sessionId string, subcategoryId string) error
	ToggleAttribute(ctx context.Context, sessionId string, attributeId string) error
	SetCustomAttributes(ctx context.Context, sessionId string, text string, additionalQuestions string) error
	ToggleDistribution(ctx context.Context, sessionId string, optionId string) error
	ToggleInfoOption(ctx context.Context, sessionId string, optionId string) error
	AddContact(ctx context.Context, sessionId string, name, businessName, email string) (*entity.VendorContact, error)
	RemoveContact(ctx context.Context, sessionId string, contactId string) error
	ImportContacts(ctx context.Context, sessionId string, payload string) ([]entity.VendorContact, error)
	EditTimeline(ctx context.Context, sessionId string, label string, input *entity.TimelineDate) error

	Snapshot(ctx context.Context, sessionId string) (*entity.RfpSubmission, error)
}

type Draft interface {
	GenerateRfp(ctx context.Context, sessionId string) (string, error)
	GenerateRfi(ctx context.Context, sessionId string) (string, error)
}

type Lifecycle interface {
	List(ctx context.Context, pg *entity.PaginationInput) (*entity.RfpCollectionsOutputModel, error)
	AddRfp(ctx context.Context, input *entity.CreateRfpInput) (*entity.RfpOutputModel, error)
	AddDraft(ctx context.Context, input *entity.CreateDraftInput) (*entity.RfpOutputModel, error)
	UpdateRfp(ctx context.Context, rfpId string, patch *entity.RfpPatch) (*entity.RfpOutputModel, error)
	UpdateDraft(ctx context.Context, draftId string, patch *entity.RfpPatch) (*entity.RfpOutputModel, error)
	PublishDraft(ctx context.Context, draftId string) (*entity.RfpOutputModel, error)
	SaveDraftFromSession(ctx context.Context, sessionId string) (*entity.RfpOutputModel, error)
}

type RfiResponses interface {
	List(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfiResponseOutputModel, error)
	AddResponse(ctx context.Context, input *entity.CreateRfiResponseInput) (*entity.RfiResponseOutputModel, error)
	ApproveResponse(ctx context.Context, responseId string) (*entity.RfiResponseOutputModel, error)
	RejectResponse(ctx context.Context, responseId string) (*entity.RfiResponseOutputModel, error)
	GradeResponse(ctx context.Context, responseId string, llmScore, userScore *int) (*entity.RfiResponseOutputModel, error)
}

type Services struct {
	Diagnostics  Diagnostics
	Wizard       Wizard
	Draft        Draft
	Lifecycle    Lifecycle
	RfiResponses RfiResponses
}

func NewServices(repos *repo.Repositories) *Services {
	return &Services{
		Diagnostics:  NewDiagnosticsService(repos),
		Wizard:       NewWizardService(repos),
		Draft:        NewDraftService(repos),
		Lifecycle:    NewLifecycleService(repos),
		RfiResponses: NewRfiResponseService(repos),
	}
}
