package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	appdocs "github.com/samverms/Kadouri-sub002/internal/application/documents"
	"github.com/samverms/Kadouri-sub002/internal/domain/documents"
	"github.com/samverms/Kadouri-sub002/internal/domain/shared"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/printing"
	"github.com/samverms/Kadouri-sub002/internal/infrastructure/storage"
	"github.com/samverms/Kadouri-sub002/internal/interfaces/http/dto"
	"github.com/samverms/Kadouri-sub002/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// ConfirmationHandler serves order confirmation documents
type ConfirmationHandler struct {
	BaseHandler
	service *appdocs.ConfirmationService
	logger  *zap.Logger
}

// NewConfirmationHandler creates a new ConfirmationHandler
func NewConfirmationHandler(service *appdocs.ConfirmationService, logger *zap.Logger) *ConfirmationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConfirmationHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the confirmation routes on the given group
func (h *ConfirmationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	pdf := rg.Group("/pdf")
	{
		pdf.POST("/orders/:role", h.Download)
		pdf.POST("/orders/:role/link", h.Link)
	}
}

// Download renders the confirmation for the role in the path and streams
// the PDF bytes inline
func (h *ConfirmationHandler) Download(c *gin.Context) {
	role, order, ok := h.bindRequest(c)
	if !ok {
		return
	}

	data, err := h.service.RenderConfirmation(c.Request.Context(), order, role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.pdf", role.KeyName(), order.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}

// Link renders the confirmation and returns a reference to it: a presigned
// download URL when storage is configured, an inline data URL otherwise
func (h *ConfirmationHandler) Link(c *gin.Context) {
	role, order, ok := h.bindRequest(c)
	if !ok {
		return
	}

	ref, err := h.service.RenderAndStoreConfirmation(c.Request.Context(), order, role)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.Success(c, dto.ConfirmationLinkResponse{
		Reference: ref,
		ExpiresIn: int64(h.service.ReferenceTTL().Seconds()),
	})
}

// bindRequest parses the role path parameter and the request body. On
// failure it writes the error response and returns ok=false.
func (h *ConfirmationHandler) bindRequest(c *gin.Context) (documents.Role, *documents.OrderConfirmation, bool) {
	role, err := documents.ParseRole(c.Param("role"))
	if err != nil {
		h.handleServiceError(c, err)
		return "", nil, false
	}

	var req dto.OrderConfirmationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			middleware.HandleValidationError(c, validationErrs)
			return "", nil, false
		}
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeInvalidJSON), dto.ErrCodeInvalidJSON, err.Error())
		return "", nil, false
	}

	order, err := req.ToDomain()
	if err != nil {
		h.handleServiceError(c, err)
		return "", nil, false
	}

	return role, order, true
}

// handleServiceError maps domain, render and storage errors to HTTP
// responses
func (h *ConfirmationHandler) handleServiceError(c *gin.Context, err error) {
	logger := h.logger
	if requestID := middleware.GetRequestID(c); requestID != "" {
		logger = logger.With(zap.String("request_id", requestID))
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.ErrorWithCode(c, domainErr.Code, domainErr.Message)
		return
	}

	var renderErr *printing.RenderError
	if errors.As(err, &renderErr) {
		logger.Error("confirmation rendering failed", zap.Error(err))
		h.ErrorWithCode(c, renderErr.Code, renderErr.Message)
		return
	}

	var storageErr *storage.StorageError
	if errors.As(err, &storageErr) {
		logger.Error("confirmation storage failed", zap.Error(err))
		h.ErrorWithCode(c, storageErr.Code, storageErr.Message)
		return
	}

	logger.Error("confirmation request failed", zap.Error(err))
	h.InternalError(c, "Internal server error")
}
