package app

import (
	"github.com/gin-gonic/gin"

	"github.com/sourcelane/rfq-backend/internal/server"
)

func wireRouter(handlerset Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		SupplierHandler: handlerset.Supplier,
		RFQHandler:      handlerset.RFQ,
		EmailHandler:    handlerset.Email,
	})
}
