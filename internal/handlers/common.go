package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/urfit-tech/lodestar-contract-api/internal/logger"
	"github.com/urfit-tech/lodestar-contract-api/internal/services"
	"go.uber.org/zap"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	contracts *services.ContractService
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(contracts *services.ContractService) *CommonServices {
	return &CommonServices{contracts: contracts}
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// sendError is a helper function that combines logging and error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
