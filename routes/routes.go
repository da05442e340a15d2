package routes

import (
	"github.com/gin-gonic/gin"

	"clinicore/authentication"
	"clinicore/controllers"
)

// ConfigRoutes wires every endpoint onto the engine. Login and the health
// probe are public; everything else sits behind the token middleware.
func ConfigRoutes(r *gin.Engine, h *controllers.Handler, jwtSecret string) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "clinicore"})
	})
	r.POST("/api/auth/login", h.Login)

	api := r.Group("/api")
	api.Use(authentication.AuthMiddleware(jwtSecret))
	{
		api.POST("/users", h.AddUser)

		api.POST("/patients", h.AddPatient)
		api.GET("/patients", h.ListPatients)
		api.GET("/patients/:id", h.GetPatient)
		api.PUT("/patients/:id", h.UpdatePatient)

		api.POST("/doctors", h.AddDoctor)
		api.GET("/doctors", h.ListDoctors)
		api.GET("/doctors/:id", h.GetDoctor)
		api.PUT("/doctors/:id", h.UpdateDoctor)
		api.DELETE("/doctors/:id", h.DeleteDoctor)

		api.POST("/appointments", h.AddAppointment)
		api.GET("/appointments", h.ListAppointments)
		api.GET("/appointments/:id", h.GetAppointment)
		api.PUT("/appointments/:id", h.UpdateAppointment)

		api.POST("/prescriptions", h.AddPrescription)
		api.GET("/prescriptions", h.ListPrescriptions)
		api.GET("/prescriptions/:id", h.GetPrescription)
		api.PUT("/prescriptions/:id", h.UpdatePrescription)
		api.DELETE("/prescriptions/:id", h.DeletePrescription)

		api.POST("/bills", h.AddBill)
		api.GET("/bills", h.ListBills)
		api.GET("/bills/:id", h.GetBill)
		api.PUT("/bills/:id", h.UpdateBill)
		api.DELETE("/bills/:id", h.DeleteBill)
		api.GET("/bills/:id/pdf", h.BillPDF)

		api.POST("/medicines", h.AddMedicine)
		api.GET("/medicines", h.ListMedicines)
		api.GET("/medicines/autocomplete", h.MedicineAutocomplete)
		api.GET("/medicines/name/:name/dosages", h.MedicineDosages)
		api.GET("/medicines/:id", h.GetMedicine)
		api.PUT("/medicines/:id", h.UpdateMedicine)

		api.GET("/dashboard/statistics", h.GetStatistics)

		api.POST("/backup/upload", h.UploadBackup)
		api.POST("/backup/list", h.ListBackups)
		api.POST("/backup/restore", h.RestoreBackup)
		api.GET("/backup/status", h.BackupStatus)
	}
}
