package contactRepository

import (
	"database/sql"
	"errors"
	"time"

	contacts "ThynxSite/internal/api/contact"
	"ThynxSite/internal/entity"
	contextPkg "ThynxSite/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SubmissionDB struct {
	ID          sql.NullString `db:"id"`
	Name        sql.NullString `db:"name"`
	Phone       sql.NullString `db:"phone"`
	Email       sql.NullString `db:"email"`
	Subject     sql.NullString `db:"subject"`
	Message     sql.NullString `db:"message"`
	SubmittedAt time.Time      `db:"submitted_at"`
	Read        sql.NullBool   `db:"read"`
}

func (r *submissionsRepository) CreateSubmission(ctx context.Context, submission entity.ContactSubmission) (entity.ContactSubmission, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           submission.ID,
		"name":         submission.Name,
		"phone":        nullString(submission.Phone),
		"email":        submission.Email,
		"subject":      nullString(submission.Subject),
		"message":      submission.Message,
		"submitted_at": submission.SubmittedAt,
		"read":         submission.Read,
	}

	query, args, err := sqlx.Named(queryCreateSubmission, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateSubmission")
		return entity.ContactSubmission{}, err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating contact submission")
		return entity.ContactSubmission{}, err
	}

	return r.GetSubmissionByID(ctx, submission.ID)
}

func (r *submissionsRepository) GetSubmissionByID(ctx context.Context, id string) (entity.ContactSubmission, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row SubmissionDB

	query, args, err := sqlx.Named(queryGetSubmissionByID, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSubmissionByID named query preparation err")
		return entity.ContactSubmission{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetSubmissionByID no rows found")
			return entity.ContactSubmission{}, contacts.ErrContactSubmissionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSubmissionByID execution err")
		return entity.ContactSubmission{}, err
	}

	return makeSubmission(row), nil
}

func (r *submissionsRepository) GetAllSubmissions(ctx context.Context) ([]entity.ContactSubmission, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []SubmissionDB

	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryGetAllSubmissions)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSubmissions execution err")
		return nil, err
	}

	list := make([]entity.ContactSubmission, 0, len(rows))
	for _, row := range rows {
		list = append(list, makeSubmission(row))
	}

	return list, nil
}

// MarkSubmissionRead sets read=true. Marking an already read submission
// succeeds and leaves it read.
func (r *submissionsRepository) MarkSubmissionRead(ctx context.Context, id string) (entity.ContactSubmission, error) {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryMarkSubmissionRead, map[string]interface{}{"id": id, "read": true})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkSubmissionRead named query preparation err")
		return entity.ContactSubmission{}, err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("MarkSubmissionRead execution err")
		return entity.ContactSubmission{}, err
	}

	if err := r.requireAffected(res, requestID, "MarkSubmissionRead"); err != nil {
		return entity.ContactSubmission{}, err
	}

	return r.GetSubmissionByID(ctx, id)
}

func (r *submissionsRepository) DeleteSubmission(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteSubmission, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSubmission named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSubmission execution err")
		return err
	}

	return r.requireAffected(res, requestID, "DeleteSubmission")
}

func (r *submissionsRepository) requireAffected(res sql.Result, requestID, operation string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " rows affected err")
		return err
	}
	if affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn(operation + " no rows found")
		return contacts.ErrContactSubmissionNotFound
	}
	return nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func makeSubmission(row SubmissionDB) entity.ContactSubmission {
	s := entity.ContactSubmission{
		ID:          row.ID.String,
		Name:        row.Name.String,
		Email:       row.Email.String,
		Message:     row.Message.String,
		SubmittedAt: row.SubmittedAt,
		Read:        row.Read.Bool,
	}
	if row.Phone.Valid {
		phone := row.Phone.String
		s.Phone = &phone
	}
	if row.Subject.Valid {
		subject := row.Subject.String
		s.Subject = &subject
	}
	return s
}
