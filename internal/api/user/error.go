package users

import (
	"net/http"

	"ThynxSite/pkg/response"
)

var (
	ErrUserNotFound          = response.NewError(http.StatusNotFound, "User not found")
	ErrUsernameAlreadyExists = response.NewError(http.StatusConflict, "Username already exists")
)
