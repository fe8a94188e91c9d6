package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/backoffice/internal/domain"
	"github.com/nikolayk812/backoffice/internal/port"
	"golang.org/x/time/rate"
)

const userIDHeader = "X-User-Id"

type currentUserKey struct{}

// currentUser resolves the caller from the user id header. A missing header
// or an unknown user leaves the request anonymous.
func currentUser(users port.UserReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(userIDHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			userID, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, r, fmt.Errorf("%w: malformed %s header", domain.ErrValidation, userIDHeader))
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				next.ServeHTTP(w, r)
				return
			case err != nil:
				writeError(w, r, fmt.Errorf("users.GetUser: %w", err))
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey{}, user.AsCurrentUser())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func userFromContext(ctx context.Context) domain.CurrentUser {
	user, _ := ctx.Value(currentUserKey{}).(domain.CurrentUser)
	return user
}

// requireAdmin rejects callers without the admin role before the body is read.
func requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !userFromContext(r.Context()).IsAdmin() {
			writeError(w, r, fmt.Errorf("%w: admin role required", domain.ErrAuthorization))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeJSON(w, http.StatusTooManyRequests, errorResponse{
					Error:   "rate_limited",
					Message: "rate limit exceeded",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
