package service

import (
	"errors"

	"github.com/salesdesk/salesdesk/internal/domain"
)

// isClientError reports whether err is caused by the request rather than the service
func isClientError(err error) bool {
	var notFound *domain.ErrNotFound
	var validation domain.ValidationError
	var conflict *domain.ErrConflict
	var unauthorized *domain.ErrUnauthorized
	return errors.As(err, &notFound) ||
		errors.As(err, &validation) ||
		errors.As(err, &conflict) ||
		errors.As(err, &unauthorized)
}
