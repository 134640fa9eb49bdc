package service

import "errors"

var (
	ErrSessionNotFound  = errors.New("wizard session not found")
	ErrRfpNotFound      = errors.New("rfp not found")
	ErrDraftNotFound    = errors.New("draft not found")
	ErrResponseNotFound = errors.New("rfi response not found")
	ErrContactNotFound  = errors.New("vendor contact not found")

	ErrTimelineEntryNotFound = errors.New("no timeline milestone with given label")

	ErrEmptyImportPayload = errors.New("contact file is empty")
	ErrMalformedHeader    = errors.New("contact file header is missing a name, business or email column")
	ErrNoValidContacts    = errors.New("contact file contains no valid rows")

	ErrDraftGeneration    = errors.New("draft generation failed")
	ErrGenerationInFlight = errors.New("draft generation already in progress")

	ErrCannotSaveDraft  = errors.New("saving a draft is only available on steps 2 through 6")
	ErrDraftNotComplete = errors.New("draft is not complete enough to publish")
)
