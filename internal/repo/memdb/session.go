package memdb

import (
	"context"
	"sync"

	"procurement-authoring-api/internal/entity"
	"procurement-authoring-api/internal/repo/repo_errors"

	"github.com/google/uuid"
)

// SessionRepo keeps wizard sessions in memory. All reads hand out deep
// copies, so the only way to mutate a session is through UpdateSession,
// which serializes writers.
type SessionRepo struct {
	mu       sync.Mutex
	catalog  *Catalog
	sessions map[uuid.UUID]*entity.WizardSession
}

func NewSessionRepo(catalog *Catalog) *SessionRepo {
	return &SessionRepo{
		catalog:  catalog,
		sessions: make(map[uuid.UUID]*entity.WizardSession),
	}
}

func (r *SessionRepo) CreateSession(ctx context.Context) (*entity.WizardSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &entity.WizardSession{
		Id:            uuid.New(),
		Step:          1,
		Categories:    append([]entity.ProductCategory(nil), r.catalog.Categories...),
		Subcategories: append([]entity.MrvSubcategory(nil), r.catalog.MrvSubcategories...),
		Attributes:    append([]entity.EnvironmentalAttribute(nil), r.catalog.Attributes...),
		Distribution:  append([]entity.VendorDistributionOption(nil), r.catalog.DistributionOptions...),
		Contacts:      make([]entity.VendorContact, 0),
		Timeline:      append([]entity.TimelineDate(nil), r.catalog.Timeline...),
		InfoOptions:   append([]entity.RequestedInfoOption(nil), r.catalog.InfoOptions...),
	}
	r.sessions[s.Id] = s

	return cloneSession(s), nil
}

func (r *SessionRepo) GetSession(ctx context.Context, id string) (*entity.WizardSession, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	return cloneSession(s), nil
}

func (r *SessionRepo) UpdateSession(ctx context.Context, id string, mutate func(*entity.WizardSession) error) (*entity.WizardSession, error) {
	uuidForm, err := uuid.Parse(id)
	if err != nil {
		return nil, repo_errors.ErrNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[uuidForm]
	if !ok {
		return nil, repo_errors.ErrNotFound
	}

	if err := mutate(s); err != nil {
		return nil, err
	}

	return cloneSession(s), nil
}

func cloneSession(s *entity.WizardSession) *entity.WizardSession {
	c := *s
	c.Categories = append([]entity.ProductCategory(nil), s.Categories...)
	c.Subcategories = append([]entity.MrvSubcategory(nil), s.Subcategories...)
	c.Attributes = append([]entity.EnvironmentalAttribute(nil), s.Attributes...)
	c.Distribution = append([]entity.VendorDistributionOption(nil), s.Distribution...)
	c.Contacts = append([]entity.VendorContact(nil), s.Contacts...)
	c.Timeline = cloneTimeline(s.Timeline)
	c.InfoOptions = append([]entity.RequestedInfoOption(nil), s.InfoOptions...)

	return &c
}

func cloneTimeline(t []entity.TimelineDate) []entity.TimelineDate {
	c := append([]entity.TimelineDate(nil), t...)
	for i := range c {
		if c[i].Date != nil {
			d := *c[i].Date
			c[i].Date = &d
		}
	}

	return c
}
