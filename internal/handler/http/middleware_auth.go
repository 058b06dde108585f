package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movie-keeper/internal/logger"
	"github.com/MKhiriev/go-movie-keeper/internal/service"
	"github.com/MKhiriev/go-movie-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces cookie-based JWT authentication.
//
// It reads the access token from the "auth_token" cookie, validates it via
// [service.AuthService.ParseToken], confirms the token subject still resolves
// to a live account, and — on success — stores the authenticated user's ID in
// the request context under [utils.UserIDCtxKey] before delegating to the
// next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "auth_token" cookie is absent ([ErrNoAccessTokenCookie]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid or cannot be parsed.
//   - The token subject no longer exists in the store.
//
// All rejections carry the same JSON error body so a caller cannot tell a
// missing cookie from a forged token. Rejection events are logged using the
// context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(accessTokenCookie)
		if err != nil {
			log.Debug().Err(ErrNoAccessTokenCookie).Send()
			writeUnauthorized(w)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Debug().Err(err).Msg("token expired")
			default:
				log.Debug().Err(err).Msg("error occurred during parsing token")
			}
			writeUnauthorized(w)
			return
		}

		if _, err := h.services.AuthService.GetUserByID(ctx, token.UserID); err != nil {
			log.Debug().Err(err).Int64("user_id", token.UserID).Msg("token subject not found")
			writeUnauthorized(w)
			return
		}

		// Store the authenticated user's ID in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter) {
	utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
}
