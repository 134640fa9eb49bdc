package common

// RFP lifecycle statuses
const (
	Draft   = "draft"
	Active  = "active"
	Closed  = "closed"
	Awarded = "awarded"
)

// RFI response statuses
const (
	ResponseNew      = "new"
	ResponseReviewed = "reviewed"
	ResponseGraded   = "graded"
	ResponseApproved = "approved"
	ResponseRejected = "rejected"
)

// NotPublished is the due date sentinel carried by drafts.
const NotPublished = "Not published"

// DueDateLayout is the locale-style date used on published RFPs, e.g. "Sep 30, 2026".
const DueDateLayout = "Jan 2, 2006"

// MrvCategoryId marks the catalog category whose subcategories are only
// meaningful while that category stays selected.
const MrvCategoryId = "mrv"
