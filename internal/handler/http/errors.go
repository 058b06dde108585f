package http

import "errors"

var (
	ErrNoRefreshTokenCookie = errors.New("no refresh token cookie in request")
	ErrNoAccessTokenCookie  = errors.New("no access token cookie in request")
)
