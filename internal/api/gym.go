package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

func (h *Handler) mountGym(api *gin.RouterGroup) {
	b := h.backend
	mountCRUD(api, "/members", resource[types.Member]{h, b.Members(), "Member", "member_id"})
	mountCRUD(api, "/trainers", resource[types.Trainer]{h, b.Trainers(), "Trainer", "trainer_id"})
	mountCRUD(api, "/memberships", resource[types.Membership]{h, b.Memberships(), "Membership", "membership_id"})

	api.GET("/members/:id/membership", h.memberMembership)
	api.GET("/members/:id/attendance", h.memberAttendance)

	api.GET("/attendance", h.listAttendance)
	api.GET("/attendance/today", h.todayAttendance)
	api.POST("/attendance", h.recordAttendance)
	api.GET("/attendance/:id", h.getAttendance)
	api.DELETE("/attendance/:id", h.deleteAttendance)

	stats := api.Group("/stats")
	stats.GET("/memberships", h.membershipStats)
	stats.GET("/membership-types", h.membershipTypes)
	stats.GET("/attendance", h.attendanceStats)
	stats.GET("/expiring-memberships", h.expiringMemberships)
}

func (h *Handler) memberMembership(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	ms, err := h.backend.Memberships().ForMember(c.Request.Context(), id)
	h.respond(c, ms, err)
}

func (h *Handler) memberAttendance(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	rows, err := h.backend.Attendance().ForMember(c.Request.Context(), id)
	h.respond(c, rows, err)
}

func (h *Handler) listAttendance(c *gin.Context) {
	rows, err := h.backend.Attendance().List(c.Request.Context())
	h.respond(c, rows, err)
}

func (h *Handler) todayAttendance(c *gin.Context) {
	rows, err := h.backend.Attendance().Today(c.Request.Context())
	h.respond(c, rows, err)
}

func (h *Handler) getAttendance(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	a, err := h.backend.Attendance().Get(c.Request.Context(), id)
	h.respond(c, a, err)
}

// recordAttendance checks a member in for today. A second check-in on the
// same day is a 400.
func (h *Handler) recordAttendance(c *gin.Context) {
	var req types.AttendanceRequest
	if !h.bind(c, &req) {
		return
	}
	id, err := h.backend.Attendance().Record(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":       "Attendance recorded successfully",
		"attendance_id": id,
	})
}

func (h *Handler) deleteAttendance(c *gin.Context) {
	id, ok := h.id(c)
	if !ok {
		return
	}
	if err := h.backend.Attendance().Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance record deleted successfully"})
}

func (h *Handler) membershipStats(c *gin.Context) {
	s, err := h.backend.MembershipStats(c.Request.Context())
	h.respond(c, s, err)
}

func (h *Handler) membershipTypes(c *gin.Context) {
	rows, err := h.backend.MembershipTypes(c.Request.Context())
	h.respond(c, rows, err)
}

func (h *Handler) attendanceStats(c *gin.Context) {
	s, err := h.backend.AttendanceStats(c.Request.Context())
	h.respond(c, s, err)
}

func (h *Handler) expiringMemberships(c *gin.Context) {
	rows, err := h.backend.ExpiringMemberships(c.Request.Context())
	h.respond(c, rows, err)
}
