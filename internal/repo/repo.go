package repo

import (
	"context"
	"time"

	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo/memdb"
	"procurement-authoring-api/internal/repo/pgdb"
	"procurement-authoring-api/pkg/postgres"

	"github.com/google/uuid"
)

type Diagnostics interface {
	Ping() error
}

// Rfp owns the active and draft collections. A given id exists in at most
// one of the two collections at any time.
type Rfp interface {
	AddRfp(ctx context.Context, input *entity.CreateRfpInput) (uuid.UUID, error)
	AddDraft(ctx context.Context, input *entity.CreateDraftInput) (uuid.UUID, error)
	GetRfpById(ctx context.Context, id string) (*entity.RfpItem, error)
	UpdateRfp(ctx context.Context, id string, patch *entity.RfpPatch) error
	UpdateDraft(ctx context.Context, id string, patch *entity.RfpPatch) error
	PublishDraft(ctx context.Context, id string, now time.Time) (*entity.RfpItem, error)
	GetActive(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfpItem, error)
	GetDrafts(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfpItem, error)
}

type RfiResponse interface {
	CreateResponse(ctx context.Context, input *entity.CreateRfiResponseInput) (uuid.UUID, error)
	GetResponseById(ctx context.Context, id string) (*entity.RfiResponse, error)
	GetResponses(ctx context.Context, pg *entity.PaginationInput) ([]entity.RfiResponse, error)
	UpdateResponseStatus(ctx context.Context, id string, status string) error
	UpdateResponseScores(ctx context.Context, id string, llmScore, userScore *int) error
}

// Session stores wizard sessions. UpdateSession runs mutate under the
// store's writer lock, giving each session single-writer semantics.
type Session interface {
	CreateSession(ctx context.Context) (*entity.WizardSession, error)
	GetSession(ctx context.Context, id string) (*entity.WizardSession, error)
	UpdateSession(ctx context.Context, id string, mutate func(*entity.WizardSession) error) (*entity.WizardSession, error)
}

// Profile is the external business profile source.
type Profile interface {
	Get(ctx context.Context) (*entity.BusinessProfile, error)
}

// Policy is the external per-category policy lookup. Get returns an empty
// string when no policy is on file; it never errors for "not found".
type Policy interface {
	Get(ctx context.Context, categoryName string) (string, error)
}

type Repositories struct {
	Diagnostics
	Rfp
	RfiResponse
	Session
	Profile
	Policy
}

// NewRepositories wires the in-memory stores, switching the RFP and RFI
// collections to postgres when a connection is supplied. Catalog-backed
// stores (sessions, profile, policy) are always in-memory.
func NewRepositories(p *postgres.Postgres) (*Repositories, error) {
	catalog, err := memdb.NewCatalog()
	if err != nil {
		return nil, err
	}

	r := &Repositories{
		Session: memdb.NewSessionRepo(catalog),
		Profile: memdb.NewProfileRepo(catalog),
		Policy:  memdb.NewPolicyRepo(catalog),
	}

	if p != nil {
		r.Diagnostics = pgdb.NewDiagnosticsRepo(p)
		r.Rfp = pgdb.NewRfpRepo(p)
		r.RfiResponse = pgdb.NewRfiResponseRepo(p)
	} else {
		r.Diagnostics = memdb.NewDiagnosticsRepo()
		r.Rfp = memdb.NewRfpRepo()
		r.RfiResponse = memdb.NewRfiResponseRepo()
	}

	return r, nil
}
