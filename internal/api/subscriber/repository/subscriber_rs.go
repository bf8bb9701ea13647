package subscriberRepository

import (
	"database/sql"
	"errors"
	"time"

	"ThynxSite/database/dberr"
	subscribers "ThynxSite/internal/api/subscriber"
	"ThynxSite/internal/entity"
	contextPkg "ThynxSite/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SubscriberDB struct {
	ID           sql.NullString `db:"id"`
	Email        sql.NullString `db:"email"`
	SubscribedAt time.Time      `db:"subscribed_at"`
}

func (r *subscribersRepository) CreateSubscriber(ctx context.Context, subscriber entity.Subscriber) (entity.Subscriber, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            subscriber.ID,
		"email":         subscriber.Email,
		"subscribed_at": subscriber.SubscribedAt,
	}

	query, args, err := sqlx.Named(queryCreateSubscriber, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateSubscriber")
		return entity.Subscriber{}, err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		if dberr.IsUniqueViolation(err) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("CreateSubscriber email already exists")
			return entity.Subscriber{}, subscribers.ErrEmailAlreadySubscribed
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating subscriber")
		return entity.Subscriber{}, err
	}

	return r.GetSubscriberByID(ctx, subscriber.ID)
}

func (r *subscribersRepository) GetSubscriberByID(ctx context.Context, id string) (entity.Subscriber, error) {
	return r.getOne(ctx, queryGetSubscriberByID, map[string]interface{}{"id": id}, "GetSubscriberByID")
}

func (r *subscribersRepository) GetSubscriberByEmail(ctx context.Context, email string) (entity.Subscriber, error) {
	return r.getOne(ctx, queryGetSubscriberByEmail, map[string]interface{}{"email": email}, "GetSubscriberByEmail")
}

func (r *subscribersRepository) getOne(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (entity.Subscriber, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row SubscriberDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return entity.Subscriber{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.Subscriber{}, subscribers.ErrSubscriberNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return entity.Subscriber{}, err
	}

	return makeSubscriber(row), nil
}

func (r *subscribersRepository) GetAllSubscribers(ctx context.Context) ([]entity.Subscriber, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []SubscriberDB

	if err := r.q.SelectContext(ctx, &rows, r.q.Rebind(queryGetAllSubscribers)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllSubscribers execution err")
		return nil, err
	}

	list := make([]entity.Subscriber, 0, len(rows))
	for _, row := range rows {
		list = append(list, makeSubscriber(row))
	}

	return list, nil
}

func (r *subscribersRepository) DeleteSubscriber(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := sqlx.Named(queryDeleteSubscriber, map[string]interface{}{"id": id})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSubscriber named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSubscriber execution err")
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
		}).Warn("DeleteSubscriber no rows found")
		return subscribers.ErrSubscriberNotFound
	}

	return nil
}

func makeSubscriber(row SubscriberDB) entity.Subscriber {
	return entity.Subscriber{
		ID:           row.ID.String,
		Email:        row.Email.String,
		SubscribedAt: row.SubscribedAt,
	}
}
