package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

func (h *Handler) mountHospital(api *gin.RouterGroup) {
	b := h.backend
	mountCRUD(api, "/patients", resource[types.Patient]{h, b.Patients(), "Patient", "patient_id"})
	mountCRUD(api, "/doctors", resource[types.Doctor]{h, b.Doctors(), "Doctor", "doctor_id"})
	mountCRUD(api, "/diseases", resource[types.Disease]{h, b.Diseases(), "Disease", "disease_id"})
	mountCRUD(api, "/medical-history", resource[types.MedicalHistory]{h, b.MedicalHistory(), "Medical history", "history_id"})

	api.GET("/patients/:id/checkins", h.patientCheckins)
	api.GET("/patients/:id/medical-history", h.patientHistory)

	api.GET("/checkins", h.listCheckins)
	api.GET("/checkins/today", h.todayCheckins)
	api.POST("/checkins", h.recordCheckin)
	api.GET("/checkins/:id", h.getCheckin)
	api.DELETE("/checkins/:id", h.deleteCheckin)

	stats := api.Group("/stats")
	stats.GET("/patients", h.patientStats)
	stats.GET("/diseases", h.diseaseStats)
	stats.GET("/checkins", h.checkinStats)
	stats.GET("/doctors", h.doctorStats)
}

func (h *Handler) patientCheckins(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	rows, err := h.backend.Checkins().ForPatient(c.Request.Context(), id)
	h.respond(c, rows, err)
}

func (h *Handler) patientHistory(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	rows, err := h.backend.MedicalHistory().ForPatient(c.Request.Context(), id)
	h.respond(c, rows, err)
}

func (h *Handler) listCheckins(c *gin.Context) {
	rows, err := h.backend.Checkins().List(c.Request.Context())
	h.respond(c, rows, err)
}

func (h *Handler) todayCheckins(c *gin.Context) {
	rows, err := h.backend.Checkins().Today(c.Request.Context())
	h.respond(c, rows, err)
}

func (h *Handler) getCheckin(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	ci, err := h.backend.Checkins().Get(c.Request.Context(), id)
	h.respond(c, ci, err)
}

func (h *Handler) recordCheckin(c *gin.Context) {
	var req types.CheckinRequest
	if !h.bind(c, &req) {
		return
	}
	id, err := h.backend.Checkins().Record(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Checkin recorded successfully",
		"checkin_id": id,
	})
}

func (h *Handler) deleteCheckin(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	if err := h.backend.Checkins().Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Checkin deleted successfully"})
}

func (h *Handler) patientStats(c *gin.Context) {
	s, err := h.backend.PatientStats(c.Request.Context())
	h.respond(c, s, err)
}

func (h *Handler) diseaseStats(c *gin.Context) {
	rows, err := h.backend.DiseaseDistribution(c.Request.Context())
	h.respond(c, rows, err)
}

func (h *Handler) checkinStats(c *gin.Context) {
	s, err := h.backend.CheckinStats(c.Request.Context())
	h.respond(c, s, err)
}

func (h *Handler) doctorStats(c *gin.Context) {
	rows, err := h.backend.DoctorLoads(c.Request.Context())
	h.respond(c, rows, err)
}
