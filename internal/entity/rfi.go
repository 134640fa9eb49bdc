package entity

import (
	"github.com/google/uuid"
)

// db model
type RfiResponse struct {
	Id           uuid.UUID `json:"id" db:"id"`
	VendorName   string    `json:"vendorName" db:"vendor_name"`
	Email        string    `json:"email" db:"email"`
	ContactEmail string    `json:"contactEmail" db:"contact_email"`
	Subject      string    `json:"subject" db:"subject"`
	ReceivedDate string    `json:"receivedDate" db:"received_date"`
	Status       string    `json:"status" db:"status"`
	Category     string    `json:"category" db:"category"`
	CompanyId    string    `json:"companyId" db:"company_id"`
	LlmScore     *int      `json:"llmScore" db:"llm_score"`
	UserScore    *int      `json:"userScore" db:"user_score"`
}

// service + repo input model
type CreateRfiResponseInput struct {
	VendorName   string // given
	Email        string // given
	ContactEmail string // given
	Subject      string // given
	Category     string // given
	CompanyId    string // given
	Status       string // should be set: "new"
	// Id UUID sets automatically
	// ReceivedDate sets automatically
}

// controller model
type RfiResponseOutputModel struct {
	Id           string `json:"id"`
	VendorName   string `json:"vendorName"`
	Email        string `json:"email"`
	ContactEmail string `json:"contactEmail,omitempty"`
	Subject      string `json:"subject"`
	ReceivedDate string `json:"receivedDate"`
	Status       string `json:"status"`
	Category     string `json:"category"`
	CompanyId    string `json:"companyId,omitempty"`
	LlmScore     *int   `json:"llmScore,omitempty"`
	UserScore    *int   `json:"userScore,omitempty"`
}
