package employee

import (
	"net/http"

	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"
	"github.com/clovisdasilvaneto/clockin/internal/shared/headerutil"

	"github.com/gin-gonic/gin"
)

const entityName = "employee"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		headerutil.CreateFailureAlert(c, entityName, "invalid")
		c.JSON(http.StatusBadRequest, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		if httpErr.Status == http.StatusBadRequest {
			headerutil.CreateFailureAlert(c, entityName, "idexists")
		}
		c.JSON(httpErr.Status, nil)
		return
	}

	c.Header("Location", "/api/employees/"+resp.ID)
	headerutil.CreateEntityCreationAlert(c, entityName, resp.ID)
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		headerutil.CreateFailureAlert(c, entityName, "invalid")
		c.JSON(http.StatusBadRequest, nil)
		return
	}

	// An update without an id degrades to a create, as on the clockin surface.
	if req.ID == "" {
		h.createFromUpdate(c, req)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), req.ID, req)
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}

	headerutil.CreateEntityUpdateAlert(c, entityName, resp.ID)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createFromUpdate(c *gin.Context, req CreateEmployeeRequest) {
	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}
	c.Header("Location", "/api/employees/"+resp.ID)
	headerutil.CreateEntityCreationAlert(c, entityName, resp.ID)
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		c.JSON(apperror.ToHTTP(err).Status, nil)
		return
	}
	headerutil.CreateEntityDeletionAlert(c, entityName, id)
	c.JSON(http.StatusOK, nil)
}
