package subscriberService

import (
	subscribers "ThynxSite/internal/api/subscriber"
	subscriberRepository "ThynxSite/internal/api/subscriber/repository"
	"ThynxSite/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ISubscriberService interface {
	Subscribe(ctx context.Context, req subscribers.CreateSubscriberRequest) (subscribers.SubscriberResponse, error)
	GetAllSubscribers(ctx context.Context) ([]subscribers.SubscriberResponse, error)
	DeleteSubscriber(ctx context.Context, id string) error
}

type subscriberService struct {
	log            *logrus.Logger
	subscriberRepo subscriberRepository.Repository
	utils          utils.IUtils
}

func NewSubscriberService(
	log *logrus.Logger,
	subscriberRepo subscriberRepository.Repository,
	utils utils.IUtils,
) ISubscriberService {
	return &subscriberService{
		log:            log,
		subscriberRepo: subscriberRepo,
		utils:          utils,
	}
}
