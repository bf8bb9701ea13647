package contacts

import (
	"net/http"

	"ThynxSite/pkg/response"
)

var (
	ErrContactSubmissionNotFound = response.NewError(http.StatusNotFound, "Contact submission not found")
	ErrInvalidContactData        = response.NewError(http.StatusBadRequest, "Invalid contact form data")
	ErrCreateContactSubmission   = response.NewError(http.StatusInternalServerError, "Failed to submit contact form")
	ErrFetchContactSubmissions   = response.NewError(http.StatusInternalServerError, "Failed to fetch contact submissions")
	ErrUpdateContactSubmission   = response.NewError(http.StatusInternalServerError, "Failed to update contact submission")
	ErrDeleteContactSubmission   = response.NewError(http.StatusInternalServerError, "Failed to delete contact submission")
)
