package domain

// User is an account record. Email is the identity and never changes for the
// lifetime of the record; there are no update or delete operations.
type User struct {
	Email       Email
	Password    Password
	Requires2FA bool
}

func NewUser(email Email, password Password, requires2FA bool) User {
	return User{
		Email:       email,
		Password:    password,
		Requires2FA: requires2FA,
	}
}
