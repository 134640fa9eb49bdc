package memdb

import (
	"context"
	"strings"

	"procurement-authoring-api/internal/entity"
)

type DiagnosticsRepo struct{}

func NewDiagnosticsRepo() *DiagnosticsRepo { return &DiagnosticsRepo{} }

func (r *DiagnosticsRepo) Ping() error { return nil }

// ProfileRepo serves the business profile snapshot from the catalog.
type ProfileRepo struct {
	catalog *Catalog
}

func NewProfileRepo(catalog *Catalog) *ProfileRepo {
	return &ProfileRepo{catalog}
}

func (r *ProfileRepo) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	profile := r.catalog.Profile
	return &profile, nil
}

// PolicyRepo resolves policy text by category name. Exact case-insensitive
// equality wins first; otherwise the first catalog-order entry where either
// name contains the other. A miss yields an empty string, never an error.
type PolicyRepo struct {
	catalog *Catalog
}

func NewPolicyRepo(catalog *Catalog) *PolicyRepo {
	return &PolicyRepo{catalog}
}

func (r *PolicyRepo) Get(ctx context.Context, categoryName string) (string, error) {
	category := strings.ToLower(strings.TrimSpace(categoryName))
	if category == "" {
		return "", nil
	}

	for _, p := range r.catalog.Policies {
		if strings.ToLower(p.Name) == category {
			return p.Text, nil
		}
	}

	for _, p := range r.catalog.Policies {
		name := strings.ToLower(p.Name)
		if strings.Contains(category, name) || strings.Contains(name, category) {
			return p.Text, nil
		}
	}

	return "", nil
}
