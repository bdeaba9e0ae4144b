package valueobjects

import "strings"

// StatusBucket is the canonical classification of a free-text status display
// name. Status rows in the lookup table carry arbitrary French labels; the
// dashboard groups them into six buckets by keyword matching.
type StatusBucket string

const (
	BucketReceived   StatusBucket = "received"
	BucketAssigned   StatusBucket = "assigned"
	BucketInProgress StatusBucket = "inProgress"
	BucketCompleted  StatusBucket = "completed"
	BucketBilled     StatusBucket = "billed"
	BucketPaid       StatusBucket = "paid"

	// BucketUnclassified marks a status name that matched no keyword set.
	// Callers see it as BucketAssigned (the historical fallback); keeping a
	// distinct value lets tests tell "really assigned" from "fell through".
	BucketUnclassified StatusBucket = "unclassified"
)

// bucketKeywords is the fixed, ordered keyword list: the first bucket whose
// set contains a substring of the (lowercased) status name wins. Accented
// keywords match only as encoded; no locale normalization is applied, so
// both accented and plain spellings are listed.
var bucketKeywords = []struct {
	bucket   StatusBucket
	keywords []string
}{
	{BucketReceived, []string{"reçu", "recu", "nouveau", "nouvelle", "received"}},
	{BucketAssigned, []string{"affecté", "affecte", "assigné", "assigne", "attribué", "attribue"}},
	{BucketInProgress, []string{"en cours", "cours", "planifié", "planifie", "progress"}},
	{BucketCompleted, []string{"terminé", "termine", "clôturé", "cloture", "achevé", "acheve", "fini"}},
	{BucketBilled, []string{"facturé", "facture"}},
	{BucketPaid, []string{"payé", "paye", "réglé", "regle"}},
}

// cancelledKeywords identify cancelled-equivalent statuses, which count as
// terminal for urgency even though they have no bucket of their own.
var cancelledKeywords = []string{"annul"}

// ClassifyStatus maps a status display name to exactly one bucket. The
// function is total: any unmatched name yields BucketUnclassified.
func ClassifyStatus(name string) StatusBucket {
	lower := strings.ToLower(name)
	for _, entry := range bucketKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.bucket
			}
		}
	}
	return BucketUnclassified
}

// Canonical collapses the internal Unclassified variant onto the historical
// fallback bucket.
func (b StatusBucket) Canonical() StatusBucket {
	if b == BucketUnclassified {
		return BucketAssigned
	}
	return b
}

// IsTerminal reports whether interventions in this bucket are finished for
// urgency purposes.
func (b StatusBucket) IsTerminal() bool {
	switch b {
	case BucketCompleted, BucketBilled, BucketPaid:
		return true
	}
	return false
}

// IsTerminalStatusName reports whether a status display name denotes a
// finished intervention: a terminal bucket or a cancelled-equivalent label.
func IsTerminalStatusName(name string) bool {
	if ClassifyStatus(name).IsTerminal() {
		return true
	}
	lower := strings.ToLower(name)
	for _, kw := range cancelledKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// ParseBucket parses a status filter query parameter.
func ParseBucket(s string) (StatusBucket, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "received":
		return BucketReceived, true
	case "assigned":
		return BucketAssigned, true
	case "inprogress", "in-progress", "in_progress":
		return BucketInProgress, true
	case "completed":
		return BucketCompleted, true
	case "billed":
		return BucketBilled, true
	case "paid":
		return BucketPaid, true
	}
	return "", false
}
