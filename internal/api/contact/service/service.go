package contactService

import (
	contacts "ThynxSite/internal/api/contact"
	contactRepository "ThynxSite/internal/api/contact/repository"
	"ThynxSite/pkg/smtp"
	"ThynxSite/pkg/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IContactService interface {
	CreateSubmission(ctx context.Context, req contacts.CreateContactSubmissionRequest) (contacts.ContactSubmissionResponse, error)
	GetAllSubmissions(ctx context.Context) ([]contacts.ContactSubmissionResponse, error)
	MarkSubmissionRead(ctx context.Context, id string) (contacts.ContactSubmissionResponse, error)
	DeleteSubmission(ctx context.Context, id string) error
}

type contactService struct {
	log         *logrus.Logger
	contactRepo contactRepository.Repository
	smtpMailer  smtp.ItfSmtp
	utils       utils.IUtils
}

// NewContactService wires the contact service. smtpMailer may be nil, in
// which case no notification is sent.
func NewContactService(
	log *logrus.Logger,
	contactRepo contactRepository.Repository,
	smtpMailer smtp.ItfSmtp,
	utils utils.IUtils,
) IContactService {
	return &contactService{
		log:         log,
		contactRepo: contactRepo,
		smtpMailer:  smtpMailer,
		utils:       utils,
	}
}
