package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RefreshSuiPrice godoc
// @Summary      Refresh the native price now
// @Description  Samples the SUI price immediately instead of waiting for the next scheduled run
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      202  {object}  SuccessResponse
// @Router       /admin/refresh-sui-price [post]
func (s *CommonServices) RefreshSuiPrice(c *gin.Context) {
	s.jobs.SampleNativeNow(c.Request.Context())
	sendSuccessMessage(c, http.StatusAccepted, "SUI price refresh triggered")
}

// RefreshZeroPriceTokens godoc
// @Summary      Retry unpriced tokens now
// @Description  Runs the zero price sweep immediately instead of waiting for the next scheduled run
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      202  {object}  SuccessResponse
// @Router       /admin/refresh-zero-prices [post]
func (s *CommonServices) RefreshZeroPriceTokens(c *gin.Context) {
	s.jobs.SweepNow(c.Request.Context())
	sendSuccessMessage(c, http.StatusAccepted, "Zero price sweep triggered")
}
