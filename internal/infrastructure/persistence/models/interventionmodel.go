package models

import (
	"time"

	"intervia/internal/shared/constants"
)

// InterventionModel mirrors the legacy interventions table. TechnicianID is
// nullable and historical rows also use 0 for "unassigned"; the mapper
// normalizes both to nil. The scheduled date is stored parsed (scheduled_on)
// and rendered back to the legacy DD/MM/YYYY wire string at the interface
// boundary.
type InterventionModel struct {
	UID           uint       `gorm:"column:uid;primaryKey"`
	Number        string     `gorm:"column:number;uniqueIndex;size:50;not null"`
	PublicToken   string     `gorm:"column:public_token;uniqueIndex;size:16;not null"`
	Title         string     `gorm:"column:title;size:200;not null"`
	Description   string     `gorm:"column:description;type:text"`
	Address       string     `gorm:"column:address;size:255"`
	City          string     `gorm:"column:city;size:100"`
	Building      string     `gorm:"column:building;size:50"`
	Floor         string     `gorm:"column:floor;size:20"`
	Apartment     string     `gorm:"column:apartment;size:20"`
	Priority      string     `gorm:"column:priority;size:20;not null;default:Normale"`
	StatusID      uint       `gorm:"column:status_id;index"`
	TypeID        uint       `gorm:"column:type_id;index"`
	ClientID      uint       `gorm:"column:client_id;index"`
	ChantierID    uint       `gorm:"column:chantier_id;index"`
	TechnicianID  *uint      `gorm:"column:technician_id;index"`
	ScheduledOn   *time.Time `gorm:"column:scheduled_on;index"`
	ScheduledTime string     `gorm:"column:scheduled_time;size:5"`
	AgencyID      uint       `gorm:"column:agency_id;index;not null"`
	CreatedAt     time.Time  `gorm:"column:created_at;index;not null"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;not null"`

	// No foreign key constraints or associations: the legacy schema uses
	// soft references managed by application logic.
}

func (InterventionModel) TableName() string {
	return constants.TableInterventions
}
