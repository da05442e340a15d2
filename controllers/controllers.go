package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicore/backup"
	"clinicore/configuration"
	"clinicore/store"
)

// Handler carries the explicitly-passed core handles into the gin layer.
// Controllers bind requests, call the core and translate failures; every
// business rule lives below this package.
type Handler struct {
	store  *store.Store
	backup *backup.Coordinator
	config configuration.Config
}

func New(s *store.Store, b *backup.Coordinator, cfg configuration.Config) *Handler {
	return &Handler{store: s, backup: b, config: cfg}
}

// fail maps core error kinds onto HTTP statuses and renders the structured
// detail the core attached.
func (h *Handler) fail(c *gin.Context, err error) {
	var se *store.Error
	if errors.As(err, &se) {
		status := http.StatusInternalServerError
		switch se.Kind {
		case store.KindValidation:
			status = http.StatusBadRequest
		case store.KindDuplicate:
			status = http.StatusConflict
		case store.KindReferential:
			status = http.StatusUnprocessableEntity
		case store.KindNotFound:
			status = http.StatusNotFound
		case store.KindBusy:
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{
			"status":  "Failed",
			"error":   string(se.Kind),
			"message": se.Message,
		})
		return
	}
	var be *backup.Error
	if errors.As(err, &be) {
		status := http.StatusBadGateway
		if be.Kind == backup.KindRestore {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{
			"status":  "Failed",
			"error":   string(be.Kind),
			"message": be.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "Failed",
		"error":   "internal",
		"message": err.Error(),
	})
}

func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  "Failed",
		"message": "Binding error",
		"data":    err.Error(),
	})
}
