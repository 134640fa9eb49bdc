package memdb

import (
	_ "embed"
	"fmt"

	"procurement-authoring-api/internal/entity"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYaml []byte

// Catalog is the static product catalog plus the externally supplied
// business profile and policy texts. Loaded once, never mutated.
type Catalog struct {
	Categories          []entity.ProductCategory          `yaml:"categories"`
	MrvSubcategories    []entity.MrvSubcategory           `yaml:"mrvSubcategories"`
	Attributes          []entity.EnvironmentalAttribute   `yaml:"attributes"`
	DistributionOptions []entity.VendorDistributionOption `yaml:"distributionOptions"`
	Timeline            []entity.TimelineDate             `yaml:"timeline"`
	InfoOptions         []entity.RequestedInfoOption      `yaml:"infoOptions"`
	Profile             entity.BusinessProfile            `yaml:"profile"`
	Policies            []PolicyEntry                     `yaml:"policies"`
}

type PolicyEntry struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`
}

func NewCatalog() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(catalogYaml, &c); err != nil {
		return nil, fmt.Errorf("error while parsing embedded catalog. %w", err)
	}

	return &c, nil
}
