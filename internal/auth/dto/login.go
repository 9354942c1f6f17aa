package dto

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TwoFactorAuthResponse is the 206 login response when the account requires
// a second factor. The session cookie is withheld until verify-2fa succeeds.
type TwoFactorAuthResponse struct {
	Message        string `json:"message"`
	LoginAttemptID string `json:"loginAttemptId"`
}
