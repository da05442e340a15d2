package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicore/models"
)

// Booking an appointment
func (h *Handler) AddAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.store.CreateAppointment(&appointment); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Appointment booked successfully",
		"data":    appointment,
	})
}

// Fetching an appointment with patient and doctor names resolved
func (h *Handler) GetAppointment(c *gin.Context) {
	view, err := h.store.GetAppointment(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Appointment details fetched successfully",
		"data":    view,
	})
}

// Updating an appointment
func (h *Handler) UpdateAppointment(c *gin.Context) {
	var upd models.AppointmentUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, err)
		return
	}
	appointment, err := h.store.UpdateAppointment(c.Param("id"), upd)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Appointment updated successfully",
		"data":    appointment,
	})
}

// Listing appointments with date, status and search filters
func (h *Handler) ListAppointments(c *gin.Context) {
	var opts models.ListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		bindingError(c, err)
		return
	}
	views, err := h.store.ListAppointments(opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Appointments list fetched successfully",
		"data":    views,
	})
}
