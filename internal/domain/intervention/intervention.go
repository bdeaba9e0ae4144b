package intervention

import (
	"fmt"
	"time"

	vo "intervia/internal/domain/intervention/valueobjects"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/constants"
)

// Intervention is a field-service ticket. Technician and schedule are
// optional: their absence is what makes an intervention "urgent" while the
// SLA window is still open. Urgency and the missing-info label are always
// derived, never stored.
type Intervention struct {
	uid           uint
	number        string
	publicToken   string
	title         string
	description   string
	address       string
	city          string
	building      string
	floor         string
	apartment     string
	priority      vo.Priority
	statusID      uint
	typeID        uint
	clientID      uint
	chantierID    uint
	technicianID  *uint
	scheduledOn   *time.Time
	scheduledTime string
	agencyID      uint
	createdAt     time.Time
	updatedAt     time.Time
}

// NewInterventionParams carries the creation fields. TechnicianID nil means
// unassigned; the zero-uid storage sentinel is normalized to nil before the
// domain ever sees it.
type NewInterventionParams struct {
	Number        string
	PublicToken   string
	Title         string
	Description   string
	Address       string
	City          string
	Building      string
	Floor         string
	Apartment     string
	Priority      vo.Priority
	StatusID      uint
	TypeID        uint
	ClientID      uint
	ChantierID    uint
	TechnicianID  *uint
	ScheduledOn   *time.Time
	ScheduledTime string
	AgencyID      uint
}

func NewIntervention(p NewInterventionParams) (*Intervention, error) {
	if len(p.Number) == 0 {
		return nil, fmt.Errorf("number is required")
	}
	if len(p.Title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(p.Description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if p.AgencyID == 0 {
		return nil, fmt.Errorf("agency ID is required")
	}
	if len(p.PublicToken) != constants.PublicTokenLength {
		return nil, fmt.Errorf("public token must be %d characters", constants.PublicTokenLength)
	}
	priority := p.Priority
	if priority == "" {
		priority = vo.PriorityNormale
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if p.ScheduledTime != "" {
		if _, err := time.Parse(constants.ScheduleTimeFormat, p.ScheduledTime); err != nil {
			return nil, fmt.Errorf("invalid schedule time: %s", p.ScheduledTime)
		}
	}

	now := biztime.NowUTC()
	return &Intervention{
		number:        p.Number,
		publicToken:   p.PublicToken,
		title:         p.Title,
		description:   p.Description,
		address:       p.Address,
		city:          p.City,
		building:      p.Building,
		floor:         p.Floor,
		apartment:     p.Apartment,
		priority:      priority,
		statusID:      p.StatusID,
		typeID:        p.TypeID,
		clientID:      p.ClientID,
		chantierID:    p.ChantierID,
		technicianID:  normalizeTechnician(p.TechnicianID),
		scheduledOn:   p.ScheduledOn,
		scheduledTime: p.ScheduledTime,
		agencyID:      p.AgencyID,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructIntervention(
	uid uint,
	p NewInterventionParams,
	createdAt, updatedAt time.Time,
) (*Intervention, error) {
	if uid == 0 {
		return nil, fmt.Errorf("intervention ID cannot be zero")
	}
	if len(p.Number) == 0 {
		return nil, fmt.Errorf("number is required")
	}

	priority := p.Priority
	if !priority.IsValid() {
		priority = vo.PriorityNormale
	}

	return &Intervention{
		uid:           uid,
		number:        p.Number,
		publicToken:   p.PublicToken,
		title:         p.Title,
		description:   p.Description,
		address:       p.Address,
		city:          p.City,
		building:      p.Building,
		floor:         p.Floor,
		apartment:     p.Apartment,
		priority:      priority,
		statusID:      p.StatusID,
		typeID:        p.TypeID,
		clientID:      p.ClientID,
		chantierID:    p.ChantierID,
		technicianID:  normalizeTechnician(p.TechnicianID),
		scheduledOn:   p.ScheduledOn,
		scheduledTime: p.ScheduledTime,
		agencyID:      p.AgencyID,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

// normalizeTechnician collapses the legacy zero sentinel onto nil:
// both mean "unassigned" in storage.
func normalizeTechnician(id *uint) *uint {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

func (i *Intervention) UID() uint               { return i.uid }
func (i *Intervention) Number() string          { return i.number }
func (i *Intervention) PublicToken() string     { return i.publicToken }
func (i *Intervention) Title() string           { return i.title }
func (i *Intervention) Description() string     { return i.description }
func (i *Intervention) Address() string         { return i.address }
func (i *Intervention) City() string            { return i.city }
func (i *Intervention) Building() string        { return i.building }
func (i *Intervention) Floor() string           { return i.floor }
func (i *Intervention) Apartment() string       { return i.apartment }
func (i *Intervention) Priority() vo.Priority   { return i.priority }
func (i *Intervention) StatusID() uint          { return i.statusID }
func (i *Intervention) TypeID() uint            { return i.typeID }
func (i *Intervention) ClientID() uint          { return i.clientID }
func (i *Intervention) ChantierID() uint        { return i.chantierID }
func (i *Intervention) TechnicianID() *uint     { return i.technicianID }
func (i *Intervention) ScheduledOn() *time.Time { return i.scheduledOn }
func (i *Intervention) ScheduledTime() string   { return i.scheduledTime }
func (i *Intervention) AgencyID() uint          { return i.agencyID }
func (i *Intervention) CreatedAt() time.Time    { return i.createdAt }
func (i *Intervention) UpdatedAt() time.Time    { return i.updatedAt }

func (i *Intervention) SetUID(uid uint) error {
	if i.uid != 0 {
		return fmt.Errorf("intervention ID is already set")
	}
	if uid == 0 {
		return fmt.Errorf("intervention ID cannot be zero")
	}
	i.uid = uid
	return nil
}

// AssignTechnician assigns a technician. Zero is the storage sentinel for
// "unassigned" and is rejected here.
func (i *Intervention) AssignTechnician(technicianID uint) error {
	if technicianID == 0 {
		return fmt.Errorf("technician ID cannot be zero")
	}
	i.technicianID = &technicianID
	i.updatedAt = biztime.NowUTC()
	return nil
}

// Schedule sets the intervention date and optional wall-clock time.
func (i *Intervention) Schedule(on time.Time, at string) error {
	if on.IsZero() {
		return fmt.Errorf("schedule date is required")
	}
	if at != "" {
		if _, err := time.Parse(constants.ScheduleTimeFormat, at); err != nil {
			return fmt.Errorf("invalid schedule time: %s", at)
		}
	}
	day := biztime.StartOfDay(on)
	i.scheduledOn = &day
	i.scheduledTime = at
	i.updatedAt = biztime.NowUTC()
	return nil
}

func (i *Intervention) MissingTechnician() bool {
	return i.technicianID == nil || *i.technicianID == 0
}

func (i *Intervention) MissingDate() bool {
	return i.scheduledOn == nil
}

// MissingInfo returns the derived legacy label describing which of
// technician and date are unset, or "" when neither is.
func (i *Intervention) MissingInfo() string {
	switch {
	case i.MissingTechnician() && i.MissingDate():
		return constants.MissingInfoBoth
	case i.MissingTechnician():
		return constants.MissingInfoTechnician
	case i.MissingDate():
		return constants.MissingInfoDate
	}
	return ""
}

// DateTimeString renders the legacy DD/MM/YYYY[ HH:mm] wire value, or ""
// when no date is assigned.
func (i *Intervention) DateTimeString() string {
	if i.scheduledOn == nil {
		return ""
	}
	s := biztime.FormatInBizTimezone(*i.scheduledOn, constants.StorageDateFormat)
	if i.scheduledTime != "" {
		s += " " + i.scheduledTime
	}
	return s
}

// HoursRemaining returns the SLA hours left at now.
func (i *Intervention) HoursRemaining(clock biztime.SLAClock, now time.Time) float64 {
	return clock.HoursRemaining(i.createdAt, now)
}

// IsOverdue reports whether the SLA window has fully elapsed.
func (i *Intervention) IsOverdue(clock biztime.SLAClock, now time.Time) bool {
	return clock.Overdue(i.createdAt, now)
}

// IsUrgent reports whether the intervention needs attention: still inside
// the SLA window, missing a technician or a date, and not in a terminal
// status. statusName is the display name of the current status row.
func (i *Intervention) IsUrgent(clock biztime.SLAClock, now time.Time, statusName string) bool {
	if vo.IsTerminalStatusName(statusName) {
		return false
	}
	if !i.MissingTechnician() && !i.MissingDate() {
		return false
	}
	return clock.HoursRemaining(i.createdAt, now) > 0
}
