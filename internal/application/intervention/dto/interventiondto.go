// Package dto holds the legacy wire shapes the dashboard frontend consumes.
// Field names are the historical French ones and must not change.
package dto

import (
	"math"
	"time"

	"intervia/internal/domain/intervention"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/utils"
)

type InterventionDTO struct {
	UID            uint    `json:"uid"`
	Numero         string  `json:"numero"`
	Titre          string  `json:"titre"`
	Description    string  `json:"description"`
	Adresse        string  `json:"adresse"`
	Ville          string  `json:"ville"`
	Batiment       string  `json:"batiment"`
	Etage          string  `json:"etage"`
	Appartement    string  `json:"appartement"`
	Priorite       string  `json:"priorite"`
	Status         string  `json:"status"`
	StatusID       uint    `json:"status_id"`
	Type           string  `json:"type"`
	TypeID         uint    `json:"type_id"`
	ClientID       uint    `json:"client_id"`
	ChantierID     uint    `json:"chantier_id"`
	TechnicienID   uint    `json:"technicien_id"`
	Technicien     *string `json:"technicien"`
	DateTime       *string `json:"date_time"`
	Timestamp      string  `json:"timestamp"`
	MissingInfo    string  `json:"missing_info"`
	HoursRemaining float64 `json:"hours_remaining"`
	IsOverdue      bool    `json:"is_overdue"`
	PublicToken    string  `json:"public_token,omitempty"`
}

// FromListItem flattens a joined intervention row into the legacy wire
// shape. The unassigned technician goes out as the historical 0 sentinel,
// and the schedule is rebuilt into the DD/MM/YYYY[ HH:mm] string the
// frontend parses.
func FromListItem(item *intervention.ListItem, clock biztime.SLAClock, now time.Time) InterventionDTO {
	iv := item.Intervention

	var technicienID uint
	var technicien *string
	if iv.TechnicianID() != nil {
		technicienID = *iv.TechnicianID()
		if item.TechnicianName != "" {
			name := item.TechnicianName
			technicien = &name
		}
	}

	var dateTime *string
	if s := iv.DateTimeString(); s != "" {
		dateTime = &s
	}

	remaining := math.Round(iv.HoursRemaining(clock, now)*10) / 10

	return InterventionDTO{
		UID:            iv.UID(),
		Numero:         iv.Number(),
		Titre:          iv.Title(),
		Description:    iv.Description(),
		Adresse:        iv.Address(),
		Ville:          iv.City(),
		Batiment:       iv.Building(),
		Etage:          iv.Floor(),
		Appartement:    iv.Apartment(),
		Priorite:       string(iv.Priority()),
		Status:         item.StatusName,
		StatusID:       iv.StatusID(),
		Type:           item.TypeName,
		TypeID:         iv.TypeID(),
		ClientID:       iv.ClientID(),
		ChantierID:     iv.ChantierID(),
		TechnicienID:   technicienID,
		Technicien:     technicien,
		DateTime:       dateTime,
		Timestamp:      iv.CreatedAt().UTC().Format(time.RFC3339),
		MissingInfo:    iv.MissingInfo(),
		HoursRemaining: remaining,
		IsOverdue:      iv.IsOverdue(clock, now),
	}
}

// PaginationDTO is the legacy pagination envelope on list responses.
type PaginationDTO struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	Limit       int   `json:"limit"`
}

func NewPaginationDTO(page, limit int, totalCount int64) PaginationDTO {
	totalPages := utils.TotalPages(totalCount, limit)
	return PaginationDTO{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		Limit:       limit,
	}
}

// StatsDTO is the dashboard header counter payload.
type StatsDTO struct {
	Received   int64 `json:"received"`
	Assigned   int64 `json:"assigned"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
	Billed     int64 `json:"billed"`
	Paid       int64 `json:"paid"`
	Total      int64 `json:"total"`
}
