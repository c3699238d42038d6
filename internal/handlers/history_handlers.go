package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultPriceHistoryHours = 24
	maxPriceHistoryHours     = 24 * 30
)

// GetSuiPriceHistory godoc
// @Summary      Get native price history
// @Description  Returns the sampled SUI price time series, oldest first
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        hours  query     int  false  "How many hours back to include (default 24, max 720)"
// @Success      200    {object}  map[string]interface{}
// @Failure      500    {object}  ErrorResponse  "Internal server error"
// @Router       /sui-price-history [get]
func (s *CommonServices) GetSuiPriceHistory(c *gin.Context) {
	hours, err := strconv.Atoi(c.DefaultQuery("hours", strconv.Itoa(defaultPriceHistoryHours)))
	if err != nil || hours < 1 {
		hours = defaultPriceHistoryHours
	}
	if hours > maxPriceHistoryHours {
		hours = maxPriceHistoryHours
	}

	since := time.Now().Add(-time.Duration(hours) * time.Hour).UnixMilli()

	entries, err := s.history.ListNativePrices(c.Request.Context(), since)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to load price history", err)
		return
	}

	sendList(c, entries)
}
