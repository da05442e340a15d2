package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinicore/models"
)

// Creating a bill. The total is recomputed from its components server-side.
func (h *Handler) AddBill(c *gin.Context) {
	var bill models.Bill
	if err := c.ShouldBindJSON(&bill); err != nil {
		bindingError(c, err)
		return
	}
	if err := h.store.CreateBill(&bill); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Bill created successfully",
		"data":    bill,
	})
}

// Fetching a bill with the patient name resolved
func (h *Handler) GetBill(c *gin.Context) {
	view, err := h.store.GetBill(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Bill details fetched successfully",
		"data":    view,
	})
}

// Updating a bill
func (h *Handler) UpdateBill(c *gin.Context) {
	var upd models.BillUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		bindingError(c, err)
		return
	}
	bill, err := h.store.UpdateBill(c.Param("id"), upd)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Bill updated successfully",
		"data":    bill,
	})
}

// Removing a bill
func (h *Handler) DeleteBill(c *gin.Context) {
	if err := h.store.DeleteBill(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Bill removed successfully",
	})
}

// Listing bills with date, status and search filters
func (h *Handler) ListBills(c *gin.Context) {
	var opts models.ListOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		bindingError(c, err)
		return
	}
	views, err := h.store.ListBills(opts)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "Success",
		"message": "Bills list fetched successfully",
		"data":    views,
	})
}

// Rendering a bill as a PDF receipt
func (h *Handler) BillPDF(c *gin.Context) {
	view, err := h.store.GetBill(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	pdfBytes, err := GenerateBillPDF(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF bill"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+view.BillID+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
