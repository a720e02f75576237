package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	internal_errors "github.com/washlava-dev/washlava/internal/errors"
	jwt_internal "github.com/washlava-dev/washlava/internal/jwt"
	"github.com/washlava-dev/washlava/internal/logger"
	"github.com/washlava-dev/washlava/internal/storage"
	"github.com/washlava-dev/washlava/internal/utils"
)

// Key to store the decoded claims in the request context
type key int

const ClaimsKey key = 0

// Auth holds dependencies for the verification and admin guard middlewares
type Auth struct {
	jwtService jwt_internal.Service
	users      storage.UserStore
}

func NewAuth(jwtService jwt_internal.Service, users storage.UserStore) *Auth {
	return &Auth{jwtService: jwtService, users: users}
}

// VerifyToken requires a bearer token, verifies it and stores the decoded
// claims in the request context. The scheme literal is not checked: the
// header is split on whitespace and the second field is taken as the token.
func (a *Auth) VerifyToken() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Unauthorized access", StatusCode: http.StatusUnauthorized})
				return
			}

			fields := strings.Fields(authHeader)
			if len(fields) < 2 {
				utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Unauthorized access", StatusCode: http.StatusUnauthorized})
				return
			}

			claims, err := a.jwtService.Decode(fields[1])
			if err != nil {
				utils.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// VerifyAdmin must run after VerifyToken. It loads the user matching the
// verified email and rejects unless the record carries the admin role.
// One store round-trip per protected request, no caching.
func (a *Auth) VerifyAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := EmailFromContext(r)
			if !ok {
				utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Unauthorized access", StatusCode: http.StatusUnauthorized})
				return
			}

			user, err := a.users.UserByEmail(email)
			if err != nil {
				if internal_errors.StatusCode(err, 0) == http.StatusNotFound {
					utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Forbidden access", StatusCode: http.StatusForbidden})
					return
				}
				logger.Log.Error("admin lookup failed", "email", email, "error", err)
				utils.WriteError(w, err)
				return
			}

			if !user.IsAdmin() {
				utils.WriteError(w, &internal_errors.ErrorWithStatusCode{Message: "Forbidden access", StatusCode: http.StatusForbidden})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFromContext retrieves the decoded claims from the request context
func ClaimsFromContext(r *http.Request) jwt.MapClaims {
	claims, ok := r.Context().Value(ClaimsKey).(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

// EmailFromContext returns the email claim of the verified token
func EmailFromContext(r *http.Request) (string, bool) {
	claims := ClaimsFromContext(r)
	if claims == nil {
		return "", false
	}
	email, ok := claims["email"].(string)
	return email, ok && email != ""
}
