package admin

type PinRequest struct {
	Pin string `json:"pin" validate:"required,len=4,number"`
}

type PinStatusResponse struct {
	IsSet bool `json:"isSet"`
}

type AuthStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	CSRFToken     string `json:"csrfToken"`
}

type SetPinResponse struct {
	Success   bool   `json:"success"`
	CSRFToken string `json:"csrfToken"`
}

type VerifyPinResponse struct {
	Valid     bool   `json:"valid"`
	CSRFToken string `json:"csrfToken,omitempty"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}
