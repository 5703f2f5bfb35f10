package account

import (
	"net/http"

	"github.com/clovisdasilvaneto/clockin/internal/shared/apperror"
	"github.com/clovisdasilvaneto/clockin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	social SocialService
}

func NewHandler(social SocialService) *Handler {
	return &Handler{social: social}
}

// SignUp provisions a local account from a federated identity assertion.
func (h *Handler) SignUp(c *gin.Context) {
	var req SocialSignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, mapped.Status, mapped.Code, mapped.Message, nil)
		return
	}

	langKey := req.LangKey
	if langKey == "" {
		langKey = "en"
	}

	conn := &Connection{
		ProviderID:     req.ProviderID,
		ProviderUserID: req.ProviderUserID,
		Profile: UserProfile{
			Email:     req.Email,
			Username:  req.Username,
			FirstName: req.FirstName,
			LastName:  req.LastName,
		},
	}

	user, err := h.social.CreateSocialUser(c.Request.Context(), conn, langKey)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// DeleteConnections removes every social connection of the caller.
func (h *Handler) DeleteConnections(c *gin.Context) {
	login := c.GetString("login")
	if login == "" {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Authentication is required", nil)
		return
	}

	if err := h.social.DeleteUserSocialConnections(c.Request.Context(), login); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil)
}
