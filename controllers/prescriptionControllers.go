package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicore/models"
)

// Adding a prescription together with its medicine items
func (h *Handler) AddPrescription(c *gin.Context) {
	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.store.CreatePrescription(&prescription); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Prescription added successfully",
		"data":    prescription,
	})
}

// Fetching a prescription with its items in submission order
func (h *Handler) GetPrescription(c *gin.Context) {
	view, err := h.store.GetPrescription(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Prescription details fetched successfully",
		"data":    view,
	})
}

// Replacing a prescription and its item list
func (h *Handler) UpdatePrescription(c *gin.Context) {
	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.store.UpdatePrescription(c.Param("id"), &prescription); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Prescription updated successfully",
		"data":    prescription,
	})
}

// Removing a prescription and all of its items
func (h *Handler) DeletePrescription(c *gin.Context) {
	if err := h.store.DeletePrescription(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Prescription removed successfully",
	})
}

// Listing prescriptions
func (h *Handler) ListPrescriptions(c *gin.Context) {
	var opts models.ListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		bindingError(c, err)
		return
	}
	views, err := h.store.ListPrescriptions(opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Prescriptions list fetched successfully",
		"data":    views,
	})
}
