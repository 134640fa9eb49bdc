package entity

import (
	"github.com/google/uuid"
)

// db model
type RfpItem struct {
	Id           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Status       string    `json:"status" db:"status"`
	DueDate      string    `json:"dueDate" db:"due_date"`
	Responses    int       `json:"responses" db:"responses"`
	CreatedAt    string    `json:"createdAt" db:"created_at"`
	LastEdited   string    `json:"lastEdited" db:"last_edited"`
	Completeness int       `json:"completeness" db:"completeness"`
	RfpText      string    `json:"rfpText" db:"rfp_text"`
}

// service + repo input model
type CreateRfpInput struct {
	Title       string // given
	Description string // given
	RfpText     string // given
	Status      string // should be set: "active"
	// Id UUID sets automatically
	// CreatedAt sets automatically
	// DueDate sets automatically: 30 days out
	// Responses sets automatically: 0
}

type CreateDraftInput struct {
	Title        string // given
	Description  string // given
	RfpText      string // given
	Completeness int    // given, 0-100
	// Status should be set: "draft"
	// DueDate should be set: "Not published"
	// CreatedAt, LastEdited set automatically
}

// RfpPatch is shallow-merged into an existing record; nil fields are
// left untouched.
type RfpPatch struct {
	Title        *string
	Description  *string
	DueDate      *string
	Responses    *int
	Completeness *int
	RfpText      *string
}

// controller model
type RfpOutputModel struct {
	Id           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	DueDate      string `json:"dueDate"`
	Responses    int    `json:"responses"`
	CreatedAt    string `json:"createdAt"`
	LastEdited   string `json:"lastEdited,omitempty"`
	Completeness int    `json:"completeness"`
	RfpText      string `json:"rfpText,omitempty"`
}

type RfpCollectionsOutputModel struct {
	Active []RfpOutputModel `json:"active"`
	Drafts []RfpOutputModel `json:"drafts"`
}
