package controllers

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"clinicore/models"
)

// GenerateBillPDF renders a printable receipt for a bill.
func GenerateBillPDF(view *models.BillView) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.SetTextColor(0, 64, 128)
	pdf.CellFormat(0, 10, "Hospital Management System", "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, "Billing Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Bill Details", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	rows := [][2]string{
		{"Bill ID", view.BillID},
		{"Date", view.BillDate},
		{"Patient", view.PatientName},
		{"Patient ID", view.PatientID},
		{"Payment Status", view.PaymentStatus},
		{"Payment Method", view.PaymentMethod},
	}
	for _, row := range rows {
		pdf.CellFormat(50, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Charges", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	charges := [][2]string{
		{"Consultation Fee", fmt.Sprintf("%.2f", view.ConsultationFee)},
		{"Medicine Cost", fmt.Sprintf("%.2f", view.MedicineCost)},
		{"Other Charges", fmt.Sprintf("%.2f", view.OtherCharges)},
	}
	for _, row := range charges {
		pdf.CellFormat(50, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(50, 7, "Total Amount", "1", 0, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("%.2f", view.TotalAmount), "1", 1, "R", false, 0, "")

	if view.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, "Notes: "+view.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
