// Package api exposes a frontdesk backend as a REST/JSON service on gin.
//
// One Handler serves one variant. The gym variant mounts members, trainers,
// memberships, attendance and gym statistics; the hospital variant mounts
// patients, doctors, diseases, medical history, check-ins and hospital
// statistics. Both serve /api/health.
package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/frontdesk/internal/sqlite"
	"github.com/mesh-intelligence/frontdesk/pkg/types"
)

// Handler routes HTTP requests to an attached backend.
type Handler struct {
	backend *sqlite.Backend
	logger  zerolog.Logger
}

// New returns a Handler for an attached backend.
func New(backend *sqlite.Backend, logger zerolog.Logger) *Handler {
	return &Handler{backend: backend, logger: logger}
}

// Router builds the gin engine with middleware and the variant's routes.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(h.logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", requestIDHeader},
		ExposeHeaders:   []string{requestIDHeader},
		MaxAge:          12 * time.Hour,
	}))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	api := r.Group("/api")
	api.GET("/health", h.health)

	switch h.backend.Variant() {
	case types.VariantGym:
		h.mountGym(api)
	case types.VariantHospital:
		h.mountHospital(api)
	}
	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"variant": h.backend.Variant(),
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// fail writes the error response for err. Missing fields, malformed ids and
// repeated check-ins are 400; absent rows are 404; anything else is a store
// failure reported as 500 with its message.
func (h *Handler) fail(c *gin.Context, err error) {
	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, types.ErrInvalidID), errors.Is(err, types.ErrAlreadyCheckedIn):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("store failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// respond writes v as a 200 response, or the error response for err.
func (h *Handler) respond(c *gin.Context, v any, err error) {
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// bind decodes the JSON body into v, writing a 400 when it is malformed.
func (h *Handler) bind(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}

// id parses the :id path parameter, writing a 400 when it is not a
// positive integer.
func (h *Handler) id(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.fail(c, types.ErrInvalidID)
		return 0, false
	}
	return id, true
}
