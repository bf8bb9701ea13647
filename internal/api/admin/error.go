package admin

import (
	"net/http"

	"ThynxSite/pkg/response"
)

var (
	ErrSettingNotFound = response.NewError(http.StatusNotFound, "Setting not found")
	ErrPinAlreadySet   = response.NewError(http.StatusBadRequest, "PIN already set")
	ErrPinNotSet       = response.NewError(http.StatusBadRequest, "PIN not set")
	ErrInvalidPin      = response.NewError(http.StatusBadRequest, "Invalid PIN format")
	ErrCheckPinStatus  = response.NewError(http.StatusInternalServerError, "Failed to check PIN status")
	ErrSetPin          = response.NewError(http.StatusInternalServerError, "Failed to set PIN")
	ErrVerifyPin       = response.NewError(http.StatusInternalServerError, "Failed to verify PIN")
	ErrResetPin        = response.NewError(http.StatusInternalServerError, "Failed to reset PIN")
	ErrSession         = response.NewError(http.StatusInternalServerError, "Failed to update session")
)
