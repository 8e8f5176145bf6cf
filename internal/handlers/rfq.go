package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sourcelane/rfq-backend/internal/platform/logger"
	"github.com/sourcelane/rfq-backend/internal/services"
)

type RFQHandler struct {
	log          *logger.Logger
	rfqService   services.RFQService
	quoteService services.QuoteService
}

func NewRFQHandler(log *logger.Logger, rsvc services.RFQService, qsvc services.QuoteService) *RFQHandler {
	return &RFQHandler{
		log:          log.With("handler", "RFQHandler"),
		rfqService:   rsvc,
		quoteService: qsvc,
	}
}

// GET /api/rfqs
func (h *RFQHandler) List(c *gin.Context) {
	rows, err := h.rfqService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"rfqs": rows})
}

// GET /api/rfqs/:id
func (h *RFQHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_rfq_id", err)
		return
	}
	row, err := h.rfqService.Get(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"rfq": row})
}

// POST /api/rfqs
func (h *RFQHandler) Create(c *gin.Context) {
	var input services.RFQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	row, err := h.rfqService.Create(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"rfq": row})
}

// PUT /api/rfqs/:id
func (h *RFQHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_rfq_id", err)
		return
	}
	var input services.RFQInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	row, err := h.rfqService.Update(c.Request.Context(), id, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"rfq": row})
}

// GET /api/rfqs/:id/quotes
// Quotes for one RFQ, cheapest first, each with its supplier attached.
func (h *RFQHandler) ListQuotes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_rfq_id", err)
		return
	}
	rows, err := h.quoteService.ListByRFQ(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"quotes": rows})
}
