package contacts

import (
	"time"

	"ThynxSite/internal/entity"
)

type CreateContactSubmissionRequest struct {
	Name    string  `json:"name" validate:"required,max=255"`
	Phone   *string `json:"phone" validate:"omitnil,max=50"`
	Email   string  `json:"email" validate:"required,email,max=255"`
	Subject *string `json:"subject" validate:"omitnil,max=500"`
	Message string  `json:"message" validate:"required,max=10000"`
}

type ContactSubmissionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       *string   `json:"phone"`
	Email       string    `json:"email"`
	Subject     *string   `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
	Read        bool      `json:"read"`
}

func NewContactSubmissionResponse(s entity.ContactSubmission) ContactSubmissionResponse {
	return ContactSubmissionResponse{
		ID:          s.ID,
		Name:        s.Name,
		Phone:       s.Phone,
		Email:       s.Email,
		Subject:     s.Subject,
		Message:     s.Message,
		SubmittedAt: s.SubmittedAt,
		Read:        s.Read,
	}
}

func NewContactSubmissionListResponse(list []entity.ContactSubmission) []ContactSubmissionResponse {
	res := make([]ContactSubmissionResponse, 0, len(list))
	for _, s := range list {
		res = append(res, NewContactSubmissionResponse(s))
	}
	return res
}
