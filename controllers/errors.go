package controllers

import (
	"errors"
	"net/http"

	"cashback-backend/services"
)

// failure maps a service error onto an HTTP status, a message and the list of
// individual issues. fallback is used as message for storage failures.
func failure(err error, fallback string) (status int, message string, issues []string) {
	var (
		validationErr *services.ValidationError
		notFoundErr   *services.NotFoundError
		ruleErr       *services.BusinessRuleError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message, validationErr.Issues
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error(), nil
	case errors.As(err, &ruleErr):
		return http.StatusBadRequest, ruleErr.Message, nil
	default:
		return http.StatusInternalServerError, fallback, []string{err.Error()}
	}
}
