package contactService

import (
	"errors"
	"time"

	contacts "ThynxSite/internal/api/contact"
	"ThynxSite/internal/entity"
	contextPkg "ThynxSite/pkg/context"
	"ThynxSite/pkg/response"
	"ThynxSite/pkg/smtp"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *contactService) CreateSubmission(ctx context.Context, req contacts.CreateContactSubmissionRequest) (contacts.ContactSubmissionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	id, err := s.utils.NewUUID()
	if err != nil {
		s.logFailure(requestID, err, "Failed to generate contact submission id")
		return contacts.ContactSubmissionResponse{}, contacts.ErrCreateContactSubmission
	}

	repo, err := s.contactRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return contacts.ContactSubmissionResponse{}, contacts.ErrCreateContactSubmission
	}

	created, err := repo.Submissions.CreateSubmission(ctx, entity.ContactSubmission{
		ID:          id,
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Subject:     req.Subject,
		Message:     req.Message,
		SubmittedAt: time.Now().UTC(),
		Read:        false,
	})
	if err != nil {
		s.logFailure(requestID, err, "Failed to create contact submission")
		return contacts.ContactSubmissionResponse{}, contacts.ErrCreateContactSubmission
	}

	s.notify(requestID, created)

	return contacts.NewContactSubmissionResponse(created), nil
}

// notify mails the submission in the background. The request never waits on
// the mail server and a failed send is only logged.
func (s *contactService) notify(requestID string, submission entity.ContactSubmission) {
	if s.smtpMailer == nil || !s.smtpMailer.Enabled() {
		return
	}

	msg := smtp.ContactNotification{
		Name:    submission.Name,
		Email:   submission.Email,
		Message: submission.Message,
	}
	if submission.Phone != nil {
		msg.Phone = *submission.Phone
	}
	if submission.Subject != nil {
		msg.Subject = *submission.Subject
	}

	go func() {
		if err := s.smtpMailer.SendContactNotification(msg); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id":    requestID,
				"submission_id": submission.ID,
				"error":         err.Error(),
			}).Warn("Failed to send contact notification")
			return
		}
		s.log.WithFields(logrus.Fields{
			"request_id":    requestID,
			"submission_id": submission.ID,
		}).Info("Contact notification sent")
	}()
}

func (s *contactService) GetAllSubmissions(ctx context.Context) ([]contacts.ContactSubmissionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contactRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return nil, contacts.ErrFetchContactSubmissions
	}

	list, err := repo.Submissions.GetAllSubmissions(ctx)
	if err != nil {
		s.logFailure(requestID, err, "Failed to fetch contact submissions")
		return nil, contacts.ErrFetchContactSubmissions
	}

	return contacts.NewContactSubmissionListResponse(list), nil
}

func (s *contactService) MarkSubmissionRead(ctx context.Context, id string) (contacts.ContactSubmissionResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contactRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return contacts.ContactSubmissionResponse{}, contacts.ErrUpdateContactSubmission
	}

	updated, err := repo.Submissions.MarkSubmissionRead(ctx, id)
	if err != nil {
		return contacts.ContactSubmissionResponse{}, s.wrap(requestID, err, contacts.ErrUpdateContactSubmission)
	}

	return contacts.NewContactSubmissionResponse(updated), nil
}

func (s *contactService) DeleteSubmission(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.contactRepo.NewClient(false)
	if err != nil {
		s.logFailure(requestID, err, "Failed to create repository client")
		return contacts.ErrDeleteContactSubmission
	}

	if err := repo.Submissions.DeleteSubmission(ctx, id); err != nil {
		return s.wrap(requestID, err, contacts.ErrDeleteContactSubmission)
	}

	return nil
}

func (s *contactService) wrap(requestID string, err error, failure error) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		return err
	}
	s.logFailure(requestID, err, failure.Error())
	return failure
}

func (s *contactService) logFailure(requestID string, err error, msg string) {
	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Error(msg)
}
