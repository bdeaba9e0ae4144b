package valueobjects

// Priority is the legacy free-text intervention priority.
type Priority string

const (
	PriorityNormale    Priority = "Normale"
	PriorityImportante Priority = "Importante"
	PriorityUrgente    Priority = "Urgente"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityNormale, PriorityImportante, PriorityUrgente:
		return true
	}
	return false
}

// NewPriority returns the priority for a raw value, defaulting to Normale
// for the empty string.
func NewPriority(raw string) (Priority, bool) {
	if raw == "" {
		return PriorityNormale, true
	}
	p := Priority(raw)
	return p, p.IsValid()
}
