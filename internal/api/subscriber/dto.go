package subscribers

import (
	"time"

	"ThynxSite/internal/entity"
)

type CreateSubscriberRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type SubscriberResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

func NewSubscriberResponse(s entity.Subscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:           s.ID,
		Email:        s.Email,
		SubscribedAt: s.SubscribedAt,
	}
}

func NewSubscriberListResponse(list []entity.Subscriber) []SubscriberResponse {
	res := make([]SubscriberResponse, 0, len(list))
	for _, s := range list {
		res = append(res, NewSubscriberResponse(s))
	}
	return res
}
