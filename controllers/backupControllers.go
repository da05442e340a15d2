package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// backupRequest is the shape shared by the backup endpoints. Credentials are
// the raw service account JSON, forwarded opaquely and never stored.
type backupRequest struct {
	Bucket      string          `json:"bucket" binding:"required"`
	Credentials json.RawMessage `json:"credentials"`
	BackupName  string          `json:"backup_name"`
}

// Uploading a snapshot of the datastore to cloud storage
func (h *Handler) UploadBackup(c *gin.Context) {
	var req backupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	name, err := h.backup.Upload(c.Request.Context(), req.Bucket, req.Credentials)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Backup uploaded successfully",
		"backup":  name,
	})
}

// Listing the available remote backups, newest first
func (h *Handler) ListBackups(c *gin.Context) {
	var req backupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	backups, err := h.backup.ListBackups(c.Request.Context(), req.Bucket, req.Credentials)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Backups listed successfully",
		"backups": backups,
	})
}

// Restoring the datastore from a named remote backup
func (h *Handler) RestoreBackup(c *gin.Context) {
	var req backupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	if req.BackupName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "Failed",
			"message": "backup_name is required",
		})
		return
	}
	if err := h.backup.Restore(c.Request.Context(), req.Bucket, req.Credentials, req.BackupName); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Database restored successfully",
	})
}

// Whether the remote storage client is usable
func (h *Handler) BackupStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"available": h.backup.Available(),
		"state":     h.backup.State(),
	})
}
