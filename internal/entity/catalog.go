package entity

// Static catalog entry, loaded once and never mutated.
type ProductCategory struct {
	Id          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

// Sub-classification that is only meaningful while the MRV category is
// selected; Selected is reset whenever the wizard moves off that category.
type MrvSubcategory struct {
	Id          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Selected    bool   `json:"selected" yaml:"-"`
}

// Independent boolean flag toggled by the wizard.
type EnvironmentalAttribute struct {
	Id          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Selected    bool   `json:"selected" yaml:"-"`
}

type VendorDistributionOption struct {
	Id          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Selected    bool   `json:"selected" yaml:"-"`
}

// One of the four optional information categories an RFI may request.
type RequestedInfoOption struct {
	Id          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Selected    bool   `json:"selected" yaml:"-"`
}
