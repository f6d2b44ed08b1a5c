package handlers

import (
	"net/http"
	"strings"

	"github.com/automotiveconsulting/site-api/internal/api/dto/common"
	"github.com/automotiveconsulting/site-api/internal/api/dto/v1/submission"
	"github.com/automotiveconsulting/site-api/internal/config"
	"github.com/automotiveconsulting/site-api/internal/logging"
	"github.com/automotiveconsulting/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmissionHandler exposes the contact/consignment submission endpoint.
type SubmissionHandler struct {
	cfg         *config.Config
	submissions *service.SubmissionService
}

func NewSubmissionHandler(cfg *config.Config, submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		cfg:         cfg,
		submissions: submissions,
	}
}

// Submit handles POST /api/v1/contact/submit. The configuration guard
// runs before the body is touched; which credential is missing is logged
// but never surfaced to the caller.
func (h *SubmissionHandler) Submit(c *gin.Context) {
	logger := logging.GetGlobalLogger()

	if missing := h.cfg.MissingSubmissionSecrets(); len(missing) > 0 {
		logger.Error("submission rejected, missing configuration: %s", strings.Join(missing, ", "))
		perr := service.ErrConfiguration(nil)
		c.JSON(perr.Status, common.NewErrorResponse(perr.Message))
		return
	}

	var payload submission.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		perr := service.ErrMalformedRequest(err)
		c.JSON(perr.Status, common.NewErrorResponse(perr.Message))
		return
	}

	receipt, perr := h.submissions.Process(c.Request.Context(), payload)
	if perr != nil {
		if perr.Err != nil {
			logger.Error("submission failed: %v", perr)
		}
		c.JSON(perr.Status, common.NewErrorResponse(perr.Message))
		return
	}

	var data interface{}
	if receipt.ID != "" {
		data = receipt
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse("Mensaje enviado con éxito.", data))
}
