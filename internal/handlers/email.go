package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sourcelane/rfq-backend/internal/platform/logger"
	"github.com/sourcelane/rfq-backend/internal/services"
)

type EmailHandler struct {
	log           *logger.Logger
	ingestService services.QuoteIngestService
}

func NewEmailHandler(log *logger.Logger, svc services.QuoteIngestService) *EmailHandler {
	return &EmailHandler{
		log:           log.With("handler", "EmailHandler"),
		ingestService: svc,
	}
}

type processEmailRequest struct {
	RFQID   uuid.UUID `json:"rfq_id"`
	Content string    `json:"content"`
}

// POST /api/emails/process
// Runs the pasted email through the extraction cascade and reconciles the
// result into supplier, quote, and email-record state.
func (h *EmailHandler) Process(c *gin.Context) {
	var req processEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	result, err := h.ingestService.ProcessEmail(c.Request.Context(), req.Content, req.RFQID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}
