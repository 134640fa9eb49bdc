package entity

// BusinessProfile is a read-only snapshot supplied by an external source.
type BusinessProfile struct {
	CompanyName         string `json:"companyName" yaml:"companyName"`
	Industry            string `json:"industry" yaml:"industry"`
	Mission             string `json:"mission" yaml:"mission"`
	SustainabilityGoals string `json:"sustainabilityGoals" yaml:"sustainabilityGoals"`
}
