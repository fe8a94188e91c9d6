package domain

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxReviewImages = 5

type Review struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	UserID    uuid.UUID
	Rating    int
	Comment   string
	Images    []string
	CreatedAt time.Time
}

// ValidateContent checks comment, images and rating, in that order.
func (r Review) ValidateContent() error {
	if strings.TrimSpace(r.Comment) == "" {
		return fmt.Errorf("%w: comment is empty", ErrValidation)
	}

	if len(r.Images) > MaxReviewImages {
		return fmt.Errorf("%w: at most %d images allowed", ErrValidation, MaxReviewImages)
	}
	for _, img := range r.Images {
		if !isImageURL(img) {
			return fmt.Errorf("%w: image %q is not a URL", ErrValidation, img)
		}
	}

	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	return nil
}

func isImageURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
