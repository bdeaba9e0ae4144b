package usecases

import (
	"context"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"intervia/internal/domain/intervention"
	vo "intervia/internal/domain/intervention/valueobjects"
	"intervia/internal/shared/biztime"
	"intervia/internal/shared/constants"
	"intervia/internal/shared/errors"
	"intervia/internal/shared/id"
	"intervia/internal/shared/logger"
)

// CreateInterventionCommand carries the multipart create form. Numero comes
// from the form, the public token is generated here.
type CreateInterventionCommand struct {
	Numero       string
	Titre        string
	Description  string
	Adresse      string
	Ville        string
	Batiment     string
	Etage        string
	Appartement  string
	Priorite     string
	StatusID     uint
	TypeID       uint
	ClientID     uint
	ChantierID   uint
	TechnicienID *uint
	Date         string
	Heure        string
}

type CreateInterventionResult struct {
	InterventionID uint
	PublicNumber   string
	PublicToken    string
}

type CreateInterventionUseCase struct {
	repo      intervention.Repository
	sanitizer *bluemonday.Policy
	agencyID  uint
	logger    logger.Interface
}

func NewCreateInterventionUseCase(repo intervention.Repository, agencyID uint, logger logger.Interface) *CreateInterventionUseCase {
	return &CreateInterventionUseCase{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
		agencyID:  agencyID,
		logger:    logger,
	}
}

func (uc *CreateInterventionUseCase) Execute(ctx context.Context, cmd CreateInterventionCommand) (*CreateInterventionResult, error) {
	uc.logger.Infow("executing create intervention use case", "numero", cmd.Numero)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create intervention command", "error", err)
		return nil, err
	}

	scheduledOn, err := parseScheduledDate(cmd.Date)
	if err != nil {
		return nil, err
	}

	token, err := id.NewPublicToken()
	if err != nil {
		uc.logger.Errorw("failed to generate public token", "error", err)
		return nil, errors.NewInternalError("échec de la génération du jeton public", err.Error())
	}

	iv, err := intervention.NewIntervention(intervention.NewInterventionParams{
		Number:        uc.sanitizer.Sanitize(cmd.Numero),
		PublicToken:   token,
		Title:         uc.sanitizer.Sanitize(cmd.Titre),
		Description:   uc.sanitizer.Sanitize(cmd.Description),
		Address:       uc.sanitizer.Sanitize(cmd.Adresse),
		City:          uc.sanitizer.Sanitize(cmd.Ville),
		Building:      uc.sanitizer.Sanitize(cmd.Batiment),
		Floor:         uc.sanitizer.Sanitize(cmd.Etage),
		Apartment:     uc.sanitizer.Sanitize(cmd.Appartement),
		Priority:      vo.Priority(cmd.Priorite),
		StatusID:      cmd.StatusID,
		TypeID:        cmd.TypeID,
		ClientID:      cmd.ClientID,
		ChantierID:    cmd.ChantierID,
		TechnicianID:  cmd.TechnicienID,
		ScheduledOn:   scheduledOn,
		ScheduledTime: cmd.Heure,
		AgencyID:      uc.agencyID,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Save(ctx, iv); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to save intervention", "error", err, "numero", cmd.Numero)
		return nil, err
	}

	uc.logger.Infow("intervention created", "uid", iv.UID(), "numero", iv.Number())

	return &CreateInterventionResult{
		InterventionID: iv.UID(),
		PublicNumber:   iv.Number(),
		PublicToken:    iv.PublicToken(),
	}, nil
}

func (uc *CreateInterventionUseCase) validateCommand(cmd CreateInterventionCommand) error {
	if cmd.Numero == "" {
		return errors.NewValidationError("le numéro est requis")
	}
	if cmd.Titre == "" {
		return errors.NewValidationError("le titre est requis")
	}
	if cmd.Description == "" {
		return errors.NewValidationError("la description est requise")
	}
	return nil
}

// parseScheduledDate accepts the legacy DD/MM/YYYY form value or the ISO
// date the newer form fields send. Empty means unscheduled.
func parseScheduledDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{constants.StorageDateFormat, constants.InputDateFormat} {
		if t, err := biztime.ParseDateInBizTimezone(layout, s); err == nil {
			day := biztime.StartOfDay(t)
			return &day, nil
		}
	}
	return nil, errors.NewValidationError("date invalide: " + s)
}
