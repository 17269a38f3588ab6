package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/flashnote-app/flashnote/internal/models"
	"github.com/flashnote-app/flashnote/internal/utils"
)

// respondError maps domain failures to the HTTP status table. Anything
// unrecognized is an internal error and gets logged.
func respondError(w http.ResponseWriter, err error) {
	var ve models.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.Error(w, http.StatusBadRequest, ve.Error())
	case errors.Is(err, models.ErrDuplicateEmail):
		utils.Error(w, http.StatusConflict, "A user with this email already exists.")
	case errors.Is(err, models.ErrInvalidCredentials):
		utils.Error(w, http.StatusUnauthorized, "Invalid credentials.")
	case errors.Is(err, models.ErrInvalidToken):
		utils.Error(w, http.StatusUnauthorized, "Not authorized, invalid or expired token.")
	case errors.Is(err, models.ErrForbidden):
		utils.Error(w, http.StatusForbidden, "You do not have permission to perform this action.")
	case errors.Is(err, models.ErrNotFound):
		utils.Error(w, http.StatusNotFound, "Not found.")
	case errors.Is(err, models.ErrMissingConfig):
		log.Printf("CRITICAL: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Internal server configuration error.")
	default:
		log.Printf("Unexpected error: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Internal server error.")
	}
}
