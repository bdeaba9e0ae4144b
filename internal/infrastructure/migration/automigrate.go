package migration

import (
	"intervia/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.InterventionModel{},
		&models.ClientModel{},
		&models.TechnicianModel{},
		&models.ChantierModel{},
		&models.InterventionStatusModel{},
		&models.InterventionTypeModel{},
	}
}
