package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berkayoztunc/suiport/internal/service/price"
)

// PriceResponse is the body returned for a resolved price.
type PriceResponse struct {
	CoinType  string  `json:"coinType"`
	Price     float64 `json:"price"`
	Source    string  `json:"source"`
	FetchedAt int64   `json:"fetchedAt"`
}

// GetTokenPrice godoc
// @Summary      Get token price
// @Description  Resolves the USD price for a coin type through the price cascade
// @Tags         prices
// @Accept       json
// @Produce      json
// @Param        coinType  path      string  true  "Fully qualified coin type (0x..::module::NAME)"
// @Success      200       {object}  PriceResponse
// @Failure      400       {object}  ErrorResponse  "Invalid coin type"
// @Failure      404       {object}  ErrorResponse  "No source could price the token"
// @Failure      500       {object}  ErrorResponse  "Internal server error"
// @Router       /price/{coinType} [get]
func (s *CommonServices) GetTokenPrice(c *gin.Context) {
	coinType := c.Param("coinType")

	resolved, err := s.prices.Resolve(c.Request.Context(), coinType)
	if err != nil {
		switch {
		case errors.Is(err, price.ErrInvalidCoinType):
			sendError(c, http.StatusBadRequest, "Invalid coin type", err)
		case errors.Is(err, price.ErrPriceUnavailable):
			sendError(c, http.StatusNotFound, "Price not available for this token", err)
		default:
			sendError(c, http.StatusInternalServerError, "Failed to resolve price", err)
		}
		return
	}

	sendSuccess(c, http.StatusOK, PriceResponse{
		CoinType:  coinType,
		Price:     resolved.Price,
		Source:    string(resolved.Source),
		FetchedAt: resolved.FetchedAt,
	})
}
