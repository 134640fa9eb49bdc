package entity

import (
	"github.com/google/uuid"
)

// WizardSession holds all field groups of one authoring session. It is
// single-owner state: mutations go through the session repository, which
// serializes them.
type WizardSession struct {
	Id                  uuid.UUID                  `json:"id"`
	Step                int                        `json:"step"`
	Title               string                     `json:"title"`
	Categories          []ProductCategory          `json:"categories"`
	SelectedCategoryId  string                     `json:"selectedCategoryId"`
	Subcategories       []MrvSubcategory           `json:"subcategories"`
	Attributes          []EnvironmentalAttribute   `json:"attributes"`
	CustomAttributes    string                     `json:"customAttributes"`
	Distribution        []VendorDistributionOption `json:"distribution"`
	Contacts            []VendorContact            `json:"contacts"`
	Timeline            []TimelineDate             `json:"timeline"`
	InfoOptions         []RequestedInfoOption      `json:"infoOptions"`
	AdditionalQuestions string                     `json:"additionalQuestions"`
	DraftText           string                     `json:"draftText"`
	Generating          bool                       `json:"-"`
}

// controller model
type WizardStateOutputModel struct {
	SessionId    string `json:"sessionId"`
	CurrentStep  int    `json:"currentStep"`
	CanAdvance   bool   `json:"canAdvance"`
	CanRetreat   bool   `json:"canRetreat"`
	CanSaveDraft bool   `json:"canSaveDraft"`
	DraftText    string `json:"draftText,omitempty"`
}
