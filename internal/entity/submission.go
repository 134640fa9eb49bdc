package entity

// RfpSubmission is the canonical aggregator output: every field group
// filtered down to its active entries, plus the free-text fields and the
// full contact list. It has no persistent identity and is recomputed on
// demand from session state.
type RfpSubmission struct {
	Title               string                     `json:"title"`
	SelectedCategoryId  string                     `json:"selectedCategoryId"`
	CategoryName        string                     `json:"categoryName"`
	Subcategories       []MrvSubcategory           `json:"subcategories"`
	Attributes          []EnvironmentalAttribute   `json:"attributes"`
	CustomAttributes    string                     `json:"customAttributes"`
	Distribution        []VendorDistributionOption `json:"distribution"`
	Contacts            []VendorContact            `json:"contacts"`
	Timeline            []TimelineDate             `json:"timeline"`
	InfoOptions         []RequestedInfoOption      `json:"infoOptions"`
	AdditionalQuestions string                     `json:"additionalQuestions"`
}
