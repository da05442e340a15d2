package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicore/models"
)

// Adding a patient
func (h *Handler) AddPatient(c *gin.Context) {
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.store.CreatePatient(&patient); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Patient added successfully",
		"data":    patient,
	})
}

// Fetching a patient by id
func (h *Handler) GetPatient(c *gin.Context) {
	patient, err := h.store.GetPatient(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Patient details fetched successfully",
		"data":    patient,
	})
}

// Updating patient details
func (h *Handler) UpdatePatient(c *gin.Context) {
	var upd models.PatientUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, err)
		return
	}
	patient, err := h.store.UpdatePatient(c.Param("id"), upd)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Patient updated successfully",
		"data":    patient,
	})
}

// Listing patients with search and date filters
func (h *Handler) ListPatients(c *gin.Context) {
	var opts models.ListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		bindingError(c, err)
		return
	}
	patients, err := h.store.ListPatients(opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Patients list fetched successfully",
		"data":    patients,
	})
}
