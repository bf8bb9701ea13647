package subscriberService

import (
	"errors"
	"time"

	subscribers "ThynxSite/internal/api/subscriber"
	"ThynxSite/internal/entity"
	contextPkg "ThynxSite/pkg/context"
	"ThynxSite/pkg/response"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *subscriberService) Subscribe(ctx context.Context, req subscribers.CreateSubscriberRequest) (subscribers.SubscriberResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.subscriberRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return subscribers.SubscriberResponse{}, subscribers.ErrCreateSubscriber
	}

	_, err = repo.Subscribers.GetSubscriberByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return subscribers.SubscriberResponse{}, subscribers.ErrEmailAlreadySubscribed
	case !errors.Is(err, subscribers.ErrSubscriberNotFound):
		s.logFailure(requestID, err, "Failed to look up subscriber")
		return subscribers.SubscriberResponse{}, subscribers.ErrCreateSubscriber
	}

	id, err := s.utils.NewUUID()
	if err != nil {
		s.logFailure(requestID, err, "Failed to generate subscriber id")
		return subscribers.SubscriberResponse{}, subscribers.ErrCreateSubscriber
	}

	created, err := repo.Subscribers.CreateSubscriber(ctx, entity.Subscriber{
		ID:           id,
		Email:        req.Email,
		SubscribedAt: time.Now().UTC(),
	})
	if err != nil {
		return subscribers.SubscriberResponse{}, s.wrap(requestID, err, subscribers.ErrCreateSubscriber)
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"id":         created.ID,
	}).Info("New subscriber")

	return subscribers.NewSubscriberResponse(created), nil
}

func (s *subscriberService) GetAllSubscribers(ctx context.Context) ([]subscribers.SubscriberResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.subscriberRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return nil, subscribers.ErrFetchSubscribers
	}

	list, err := repo.Subscribers.GetAllSubscribers(ctx)
	if err != nil {
		s.logFailure(requestID, err, "Failed to fetch subscribers")
		return nil, subscribers.ErrFetchSubscribers
	}

	return subscribers.NewSubscriberListResponse(list), nil
}

func (s *subscriberService) DeleteSubscriber(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.subscriberRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return subscribers.ErrDeleteSubscriber
	}

	if err := repo.Subscribers.DeleteSubscriber(ctx, id); err != nil {
		return s.wrap(requestID, err, subscribers.ErrDeleteSubscriber)
	}

	return nil
}

func (s *subscriberService) wrap(requestID string, err error, failure error) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return err
	}
	s.logFailure(requestID, err, failure.Error())
	return failure
}

func (s *subscriberService) logFailure(requestID string, err error, msg string) {
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Error(msg)
}
