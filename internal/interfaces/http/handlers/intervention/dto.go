package intervention

import "intervia/internal/application/intervention/dto"

// AssignTechnicianRequest is the JSON body of POST /api/assign-technician.
type AssignTechnicianRequest struct {
	InterventionID uint `json:"interventionId" binding:"required"`
	TechnicianID   uint `json:"technicianId" binding:"required"`
}

// AssignDateRequest is the JSON body of POST /api/assign-date.
type AssignDateRequest struct {
	InterventionID uint   `json:"interventionId" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time"`
}

// ListResponse is the legacy list envelope: a data array plus the
// pagination block the frontend paginator reads.
type ListResponse struct {
	Data       []dto.InterventionDTO `json:"data"`
	Pagination dto.PaginationDTO     `json:"pagination"`
}

// ActionResponse is the legacy mutation envelope.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CreateResponse is the successful create payload.
type CreateResponse struct {
	Success        bool   `json:"success"`
	InterventionID uint   `json:"interventionId"`
	PublicNumber   string `json:"publicNumber"`
}
