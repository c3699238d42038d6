package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultTokenPageSize = 50
	maxTokenPageSize     = 200
)

// ListTokens godoc
// @Summary      List known tokens
// @Description  Returns the cached token records with their last known prices
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        limit   query     int  false  "Page size (default 50, max 200)"
// @Param        offset  query     int  false  "Page offset"
// @Success      200     {object}  map[string]interface{}
// @Failure      500     {object}  ErrorResponse  "Internal server error"
// @Router       /tokens [get]
func (s *CommonServices) ListTokens(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultTokenPageSize)))
	if err != nil || limit < 1 {
		limit = defaultTokenPageSize
	}
	if limit > maxTokenPageSize {
		limit = maxTokenPageSize
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	tokens, err := s.tokens.List(c.Request.Context(), int32(limit), int32(offset))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list tokens", err)
		return
	}

	sendList(c, tokens)
}

// GetToken godoc
// @Summary      Get a token record
// @Description  Returns the cached record for a coin type
// @Tags         tokens
// @Accept       json
// @Produce      json
// @Param        coinType  path      string  true  "Fully qualified coin type"
// @Success      200       {object}  types.Token
// @Failure      404       {object}  ErrorResponse  "Token not known"
// @Failure      500       {object}  ErrorResponse  "Internal server error"
// @Router       /tokens/{coinType} [get]
func (s *CommonServices) GetToken(c *gin.Context) {
	coinType := c.Param("coinType")

	token, err := s.tokens.Get(c.Request.Context(), coinType)
	if err != nil {
		handleStorageError(c, err, "Token not known")
		return
	}

	sendSuccess(c, http.StatusOK, token)
}
