package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sourcelane/rfq-backend/internal/platform/logger"
	"github.com/sourcelane/rfq-backend/internal/services"
)

type SupplierHandler struct {
	log             *logger.Logger
	supplierService services.SupplierService
}

func NewSupplierHandler(log *logger.Logger, svc services.SupplierService) *SupplierHandler {
	return &SupplierHandler{
		log:             log.With("handler", "SupplierHandler"),
		supplierService: svc,
	}
}

// GET /api/suppliers
func (h *SupplierHandler) List(c *gin.Context) {
	rows, err := h.supplierService.List(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"suppliers": rows})
}

// POST /api/suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	var input services.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	row, err := h.supplierService.Create(c.Request.Context(), input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"supplier": row})
}

// PUT /api/suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_supplier_id", err)
		return
	}
	var input services.SupplierInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	row, err := h.supplierService.Update(c.Request.Context(), id, input)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"supplier": row})
}
