package models

import "intervia/internal/shared/constants"

type ClientModel struct {
	UID  uint   `gorm:"column:uid;primaryKey"`
	Name string `gorm:"column:name;size:200;not null"`
}

func (ClientModel) TableName() string {
	return constants.TableClients
}

type TechnicianModel struct {
	UID       uint   `gorm:"column:uid;primaryKey"`
	Firstname string `gorm:"column:firstname;size:100"`
	Lastname  string `gorm:"column:lastname;size:100"`
	Address   string `gorm:"column:address;size:255"`
}

func (TechnicianModel) TableName() string {
	return constants.TableTechnicians
}

// ChantierModel mirrors the legacy businesses table: construction-site
// groupings ("affaires") that interventions attach to.
type ChantierModel struct {
	UID  uint   `gorm:"column:uid;primaryKey"`
	Name string `gorm:"column:name;size:200;not null"`
}

func (ChantierModel) TableName() string {
	return constants.TableChantiers
}

type InterventionStatusModel struct {
	UID  uint   `gorm:"column:uid;primaryKey"`
	Name string `gorm:"column:name;size:100;not null"`
}

func (InterventionStatusModel) TableName() string {
	return constants.TableStatuses
}

type InterventionTypeModel struct {
	UID  uint   `gorm:"column:uid;primaryKey"`
	Name string `gorm:"column:name;size:100;not null"`
}

func (InterventionTypeModel) TableName() string {
	return constants.TableTypes
}
