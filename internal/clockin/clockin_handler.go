package clockin

import (
	"errors"
	"net/http"

	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"
	"github.com/clovisdasilvaneto/clockin/internal/shared/headerutil"

	"github.com/gin-gonic/gin"
)

const entityName = "clockin"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create handles POST /api/clockins. A payload that already carries an id
// is rejected with 400 and a failure alert; success answers 201 with a
// Location header and a creation alert.
func (h *Handler) Create(c *gin.Context) {
	var req ClockinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		headerutil.CreateFailureAlert(c, entityName, "invalid")
		c.JSON(http.StatusBadRequest, nil)
		return
	}

	h.create(c, req)
}

func (h *Handler) create(c *gin.Context, req ClockinRequest) {
	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrIDExists) {
			headerutil.CreateFailureAlert(c, entityName, "idexists")
			c.JSON(http.StatusBadRequest, nil)
			return
		}
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}

	c.Header("Location", "/api/clockins/"+resp.ID)
	headerutil.CreateEntityCreationAlert(c, entityName, resp.ID)
	c.JSON(http.StatusCreated, resp)
}

// Update handles PUT /api/clockins; without an id it delegates to Create.
func (h *Handler) Update(c *gin.Context) {
	var req ClockinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		headerutil.CreateFailureAlert(c, entityName, "invalid")
		c.JSON(http.StatusBadRequest, nil)
		return
	}

	if req.ID == "" {
		h.create(c, req)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}

	headerutil.CreateEntityUpdateAlert(c, entityName, resp.ID)
	c.JSON(http.StatusOK, resp)
}

// GetAll handles GET /api/clockins; pagination metadata travels out-of-band
// in X-Total-Count and Link headers.
func (h *Handler) GetAll(c *gin.Context) {
	p := ParsePageParams(c)

	resp, total, err := h.service.GetPage(c.Request.Context(), p)
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}

	headerutil.GeneratePaginationHeaders(c, "/api/clockins", p.Page, p.Size, total)
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/clockins/:id; an unknown id answers 404 with an
// empty body.
func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/clockins/:id and always reports success.
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}
	headerutil.CreateEntityDeletionAlert(c, entityName, id)
	c.JSON(http.StatusOK, nil)
}

// Search handles GET /api/_search/clockins?query=...
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("query")
	p := ParsePageParams(c)

	resp, total, err := h.service.Search(c.Request.Context(), query, p)
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}

	headerutil.GenerateSearchPaginationHeaders(c, "/api/_search/clockins", query, p.Page, p.Size, total)
	c.JSON(http.StatusOK, resp)
}
