// Package directory holds the simple lookup entities the dashboard forms
// reference: clients, technicians, chantiers (maintenance jobs) and the
// intervention status/type lookup rows. None of them carry lifecycle logic.
package directory

import "context"

type Client struct {
	UID  uint
	Name string
}

type Technician struct {
	UID       uint
	Firstname string
	Lastname  string
	Address   string
}

// FullName is the "firstname lastname" display form the dashboard searches
// and sorts on.
func (t Technician) FullName() string {
	switch {
	case t.Firstname == "":
		return t.Lastname
	case t.Lastname == "":
		return t.Firstname
	}
	return t.Firstname + " " + t.Lastname
}

// Chantier is a construction-site grouping of interventions (the legacy
// "affaire"/business record acting as a project container).
type Chantier struct {
	UID  uint
	Name string
}

type StatusOption struct {
	UID  uint
	Name string
}

type TypeOption struct {
	UID  uint
	Name string
}

// Repository lists the reference rows that feed the dashboard dropdowns.
type Repository interface {
	ListClients(ctx context.Context) ([]Client, error)
	ListTechnicians(ctx context.Context) ([]Technician, error)
	ListChantiers(ctx context.Context) ([]Chantier, error)
	ListStatuses(ctx context.Context) ([]StatusOption, error)
	ListTypes(ctx context.Context) ([]TypeOption, error)
}
