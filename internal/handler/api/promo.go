package api

import (
	"errors"
	"net/http"

	"bookit/internal/domain/promo"
	reqdto "bookit/internal/handler/dto/request"
	resdto "bookit/internal/handler/dto/response"
	"bookit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PromoHandler struct {
	promoQueries queries.PromoQueries
}

func NewPromoHandler(promoQueries queries.PromoQueries) *PromoHandler {
	return &PromoHandler{
		promoQueries: promoQueries,
	}
}

// @Summary Validate promo code
// @Description Validate a promo code against a price and compute the discount
// @Tags promo
// @Accept json
// @Produce json
// @Param request body reqdto.ValidatePromoRequest true "Promo validation request"
// @Success 200 {object} resdto.PromoValidationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /promo/validate [post]
func (h *PromoHandler) ValidatePromo(c *gin.Context) {
	var req reqdto.ValidatePromoRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.promoQueries.Validate(req.Code, req.Price)
	if err != nil {
		switch {
		case errors.Is(err, promo.ErrCodeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"valid": false,
				"error": "Invalid promo code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPromoResult(result))
}
