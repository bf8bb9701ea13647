package subscribers

import (
	"net/http"

	"ThynxSite/pkg/response"
)

var (
	ErrSubscriberNotFound     = response.NewError(http.StatusNotFound, "Subscriber not found")
	ErrEmailAlreadySubscribed = response.NewError(http.StatusBadRequest, "Email already subscribed")
	ErrInvalidSubscription    = response.NewError(http.StatusBadRequest, "Invalid subscription data")
	ErrCreateSubscriber       = response.NewError(http.StatusInternalServerError, "Failed to subscribe")
	ErrFetchSubscribers       = response.NewError(http.StatusInternalServerError, "Failed to fetch subscribers")
	ErrDeleteSubscriber       = response.NewError(http.StatusInternalServerError, "Failed to delete subscriber")
)
