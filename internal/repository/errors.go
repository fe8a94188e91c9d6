package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nikolayk812/backoffice/internal/domain"
)

var (
	ErrOrderNotFound  = fmt.Errorf("order %w", domain.ErrNotFound)
	ErrRouteNotFound  = fmt.Errorf("route %w", domain.ErrNotFound)
	ErrReviewNotFound = fmt.Errorf("review %w", domain.ErrNotFound)
	ErrUserNotFound   = fmt.Errorf("user %w", domain.ErrNotFound)
	ErrCouponNotFound = fmt.Errorf("coupon %w", domain.ErrNotFound)

	ErrReviewExists = fmt.Errorf("%w: review already exists", domain.ErrConflict)
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func hasPgCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
