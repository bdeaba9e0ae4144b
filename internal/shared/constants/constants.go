package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination. MaxPageSize is a hard cap on the client-supplied
	// limit parameter to prevent unbounded result sets.
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Intervention priorities (legacy free-text values, kept verbatim)
	PriorityNormale    = "Normale"
	PriorityImportante = "Importante"
	PriorityUrgente    = "Urgente"

	// Legacy wire formats for scheduled dates
	StorageDateFormat  = "02/01/2006"
	InputDateFormat    = "2006-01-02"
	ScheduleTimeFormat = "15:04"

	// Derived missing-info labels (legacy French wire values)
	MissingInfoBoth       = "Technicien et Date manquants"
	MissingInfoTechnician = "Technicien manquant"
	MissingInfoDate       = "Date manquante"

	// Database table names
	TableInterventions = "interventions"
	TableStatuses      = "interventions_status"
	TableTypes         = "interventions_types"
	TableClients       = "clients"
	TableTechnicians   = "technicians"
	TableChantiers     = "businesses"

	// Length of the random public token generated for every intervention
	PublicTokenLength = 16
)
