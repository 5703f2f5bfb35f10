package workday

import (
	"net/http"
	"time"

	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAll handles GET /api/workdays.
func (h *Handler) GetAll(c *gin.Context) {
	workdays, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}
	c.JSON(http.StatusOK, workdays)
}

// GetForEmployee handles GET /api/workdays/employee/:id, optionally
// windowed by start/end date query params (YYYY-MM-DD, inclusive). The
// window is both bounds or none; a one-sided window is a client error.
func (h *Handler) GetForEmployee(c *gin.Context) {
	var start, end *time.Time
	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, nil)
			return
		}
		start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, nil)
			return
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		end = &t
	}
	if (start == nil) != (end == nil) {
		c.JSON(http.StatusBadRequest, nil)
		return
	}

	workdays, err := h.service.GetForEmployee(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}
	c.JSON(http.StatusOK, workdays)
}
