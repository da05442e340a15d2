package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicore/models"
)

// Dashboard statistics, computed fresh on every call. Without query
// parameters the window is all time; from/to bound it inclusively.
func (h *Handler) GetStatistics(c *gin.Context) {
	var window models.StatsWindow
	if err := c.ShouldBindQuery(&window); err != nil {
		bindingError(c, err)
		return
	}
	stats, err := h.store.Aggregate(window)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Statistics fetched successfully",
		"data":    stats,
	})
}
