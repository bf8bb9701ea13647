package userRepository

import (
	"database/sql"
	"errors"

	"ThynxSite/database/dberr"
	users "ThynxSite/internal/api/user"
	"ThynxSite/internal/entity"
	contextPkg "ThynxSite/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type UserDB struct {
	ID       sql.NullString `db:"id"`
	Username sql.NullString `db:"username"`
	Password sql.NullString `db:"password"`
}

func (r *usersRepository) CreateUser(ctx context.Context, user entity.User) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"password": user.Password,
	}

	query, args, err := sqlx.Named(queryCreateUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateUser")
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		if dberr.IsUniqueViolation(err) {
			return entity.User{}, users.ErrUsernameAlreadyExists
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return entity.User{}, err
	}

	return r.GetUserByID(ctx, user.ID)
}

func (r *usersRepository) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByID, map[string]interface{}{"id": id}, "GetUserByID")
}

func (r *usersRepository) GetUserByUsername(ctx context.Context, username string) (entity.User, error) {
	return r.getOne(ctx, queryGetUserByUsername, map[string]interface{}{"username": username}, "GetUserByUsername")
}

func (r *usersRepository) getOne(ctx context.Context, namedQuery string, argsKV map[string]interface{}, operation string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row UserDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " named query preparation err")
		return entity.User{}, err
	}
	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.User{}, users.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " execution err")
		return entity.User{}, err
	}

	return entity.User{
		ID:       row.ID.String,
		Username: row.Username.String,
		Password: row.Password.String,
	}, nil
}
