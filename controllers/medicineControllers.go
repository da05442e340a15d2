package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clinicore/models"
)

// Adding a catalog medicine
func (h *Handler) AddMedicine(c *gin.Context) {
	var medicine models.Medicine
	if err := c.ShouldBindJSON(&medicine); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.store.CreateMedicine(&medicine); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Medicine added successfully",
		"data":    medicine,
	})
}

// Fetching a catalog medicine
func (h *Handler) GetMedicine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medicine ID"})
		return
	}
	medicine, err := h.store.GetMedicine(uint(id))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Medicine details fetched successfully",
		"data":    medicine,
	})
}

// Updating a catalog medicine
func (h *Handler) UpdateMedicine(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medicine ID"})
		return
	}
	var upd models.MedicineUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, err)
		return
	}
	medicine, err := h.store.UpdateMedicine(uint(id), upd)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Medicine updated successfully",
		"data":    medicine,
	})
}

// Listing/searching the medicine catalog
func (h *Handler) ListMedicines(c *gin.Context) {
	var opts models.ListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		bindingError(c, err)
		return
	}
	medicines, err := h.store.ListMedicines(opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Medicines list fetched successfully",
		"data":    medicines,
	})
}

// Distinct medicine names for the prescription autocomplete
func (h *Handler) MedicineAutocomplete(c *gin.Context) {
	names, err := h.store.MedicineNames()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "Success",
		"medicines": names,
	})
}

// Known dosages for one medicine name
func (h *Handler) MedicineDosages(c *gin.Context) {
	dosages, err := h.store.DosagesFor(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"dosages": dosages,
	})
}
