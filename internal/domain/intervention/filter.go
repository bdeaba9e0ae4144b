package intervention

import (
	"strings"

	vo "intervia/internal/domain/intervention/valueobjects"
)

// ListKind selects one of the query shapes the dashboard issues. Urgent
// kinds add the urgency predicate (inside SLA window, missing technician or
// date, non-terminal status); recent kinds default to newest-first ordering.
type ListKind string

const (
	KindUrgentAll ListKind = "urgent-all"
	KindAllRecent ListKind = "all-recent"
	KindUrgent    ListKind = "urgent"
	KindRecent    ListKind = "recent"
	KindFiltered  ListKind = "filtered"
)

// IsUrgent reports whether this kind carries the urgency predicate.
func (k ListKind) IsUrgent() bool {
	return k == KindUrgentAll || k == KindUrgent
}

// MissingFilter narrows a list to interventions missing assignment data.
type MissingFilter string

const (
	MissingNone       MissingFilter = ""
	MissingTechnician MissingFilter = "technicien"
	MissingDate       MissingFilter = "date"
	MissingBoth       MissingFilter = "both"
)

// ParseMissingFilter parses the missing query parameter.
func ParseMissingFilter(s string) (MissingFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return MissingNone, true
	case "technicien", "technician":
		return MissingTechnician, true
	case "date":
		return MissingDate, true
	case "both", "les-deux":
		return MissingBoth, true
	}
	return MissingNone, false
}

// TimeFilter narrows urgent lists by remaining SLA hours.
type TimeFilter string

const (
	TimeFilterNone TimeFilter = ""
	TimeFilterLt8  TimeFilter = "lt8h"
	TimeFilterLt24 TimeFilter = "lt24h"
	TimeFilterLt48 TimeFilter = "lt48h"
)

// Hours returns the remaining-hours ceiling of the bucket, or 0 for none.
func (f TimeFilter) Hours() int {
	switch f {
	case TimeFilterLt8:
		return 8
	case TimeFilterLt24:
		return 24
	case TimeFilterLt48:
		return 48
	}
	return 0
}

// ParseTimeFilter parses the timeFilter query parameter.
func ParseTimeFilter(s string) (TimeFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TimeFilterNone, true
	case "lt8h", "8h":
		return TimeFilterLt8, true
	case "lt24h", "24h":
		return TimeFilterLt24, true
	case "lt48h", "48h":
		return TimeFilterLt48, true
	}
	return TimeFilterNone, false
}

// ListFilter is the full filter set the query builder consumes. Zero values
// mean "no filter". Status is matched through the classifier: lookup rows
// whose display name classifies into the bucket.
type ListFilter struct {
	Kind         ListKind
	Search       string
	Status       vo.StatusBucket
	Missing      MissingFilter
	Time         TimeFilter
	Priority     vo.Priority
	TechnicianID *uint
	Date         *DateRange
	SortBy       string
	SortOrder    string
	Page         int
	Limit        int
}
