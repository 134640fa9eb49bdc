package entity

import "time"

// TimelineDate is one milestone in the fixed release → questions deadline →
// proposal deadline → evaluation → selection → commencement sequence. The
// order never changes; entries are only toggled or edited in place.
type TimelineDate struct {
	Label       string     `json:"label" yaml:"label"`
	Date        *time.Time `json:"date" yaml:"-"`
	Description string     `json:"description" yaml:"description"`
	Enabled     bool       `json:"enabled" yaml:"-"`
}
