package entity

import (
	"github.com/google/uuid"
)

// VendorContact is created by manual entry or bulk import. Id is assigned
// at creation; a contact is never mutated afterwards, only removed.
type VendorContact struct {
	Id           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BusinessName string    `json:"businessName"`
	Email        string    `json:"email"`
}
