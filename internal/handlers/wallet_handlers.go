package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/berkayoztunc/suiport/internal/service/portfolio"
)

const (
	defaultHistoryDays = 7
	maxHistoryDays     = 90
)

// GetWallet godoc
// @Summary      Get wallet portfolio
// @Description  Scans a wallet's coins, values every holding in USD and returns the snapshot
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        address  path      string  true   "Sui wallet address"
// @Param        refresh  query     bool    false  "Force a full re-scan, bypassing the snapshot cache"
// @Success      200      {object}  types.Wallet
// @Failure      400      {object}  ErrorResponse  "Invalid wallet address"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /wallet/{address} [get]
func (s *CommonServices) GetWallet(c *gin.Context) {
	address := c.Param("address")
	refresh := c.Query("refresh") == "true"

	wallet, err := s.portfolio.Scan(c.Request.Context(), address, refresh)
	if err != nil {
		if errors.Is(err, portfolio.ErrInvalidAddress) {
			sendError(c, http.StatusBadRequest, "Invalid wallet address", err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to scan wallet", err)
		return
	}

	sendSuccess(c, http.StatusOK, wallet)
}

// GetWalletHistory godoc
// @Summary      Get wallet value history
// @Description  Returns the wallet's total value time series, oldest first
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        address  path      string  true   "Sui wallet address"
// @Param        days     query     int     false  "How many days back to include (default 7, max 90)"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse  "Invalid wallet address"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /wallet/{address}/history [get]
func (s *CommonServices) GetWalletHistory(c *gin.Context) {
	address := c.Param("address")
	if err := portfolio.ValidateAddress(address); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid wallet address", err)
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultHistoryDays)))
	if err != nil || days < 1 {
		days = defaultHistoryDays
	}
	if days > maxHistoryDays {
		days = maxHistoryDays
	}

	since := time.Now().Add(-time.Duration(days) * 24 * time.Hour).UnixMilli()

	entries, err := s.history.ListWalletHistory(c.Request.Context(), address, since)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to load wallet history", err)
		return
	}

	sendList(c, entries)
}
