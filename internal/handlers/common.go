package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/berkayoztunc/suiport/internal/interfaces"
	"github.com/berkayoztunc/suiport/internal/logger"
	"github.com/berkayoztunc/suiport/internal/storage"
)

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	portfolio interfaces.PortfolioService
	prices    interfaces.PriceService
	history   interfaces.HistoryService
	tokens    interfaces.TokenService
	jobs      interfaces.JobService
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// NewCommonServices creates a new instance of CommonServices
func NewCommonServices(portfolio interfaces.PortfolioService, prices interfaces.PriceService, history interfaces.HistoryService, tokens interfaces.TokenService, jobs interfaces.JobService) *CommonServices {
	return &CommonServices{
		portfolio: portfolio,
		prices:    prices,
		history:   history,
		tokens:    tokens,
		jobs:      jobs,
	}
}

// sendError is a helper function that combines logging and error response
// It logs the error with the given message and sends a JSON error response
func sendError(c *gin.Context, statusCode int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleStorageError maps storage errors to HTTP status codes
func handleStorageError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, storage.ErrNotFound):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendList is a helper function that sends a list response
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
