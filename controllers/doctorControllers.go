package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicore/models"
)

// Adding a doctor
func (h *Handler) AddDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.store.CreateDoctor(&doctor); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Doctor added successfully",
		"data":    doctor,
	})
}

// Fetching a doctor by id
func (h *Handler) GetDoctor(c *gin.Context) {
	doctor, err := h.store.GetDoctor(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Doctor details fetched successfully",
		"data":    doctor,
	})
}

// Updating doctor details
func (h *Handler) UpdateDoctor(c *gin.Context) {
	var upd models.DoctorUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, err)
		return
	}
	doctor, err := h.store.UpdateDoctor(c.Param("id"), upd)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Doctor updated successfully",
		"data":    doctor,
	})
}

// Removing a doctor. Appointments and prescriptions that reference the
// doctor keep their id and render "N/A" from then on.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	if err := h.store.DeleteDoctor(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Doctor removed successfully",
	})
}

// Listing doctors
func (h *Handler) ListDoctors(c *gin.Context) {
	var opts models.ListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		bindingError(c, err)
		return
	}
	doctors, err := h.store.ListDoctors(opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Doctors list fetched successfully",
		"data":    doctors,
	})
}
