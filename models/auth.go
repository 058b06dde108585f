package models

// Credentials is the request payload shared by the register and login
// endpoints. Password length follows the original client contract.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenPair is the response of register and login: the new user identifier
// plus a freshly issued access/refresh token pair.
//
// The refresh token is additionally attached as an HTTP-only cookie; it is
// still echoed in the body because the browser client persists the access
// token itself.
type TokenPair struct {
	UserID       int64  `json:"userId"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshedSession is the response of the token refresh endpoint.
// Unlike login and register it carries the full user object, so the client
// can restore its session state without a separate profile request.
type RefreshedSession struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
