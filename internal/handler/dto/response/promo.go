package response

import (
	"bookit/internal/domain/promo"
)

type PromoValidationResponse struct {
	Valid      bool   `json:"valid"`
	Code       string `json:"code"`
	Type       string `json:"type"`
	Value      int64  `json:"value"`
	Discount   int64  `json:"discount"`
	FinalPrice int64  `json:"finalPrice"`
}

func FromPromoResult(r *promo.Result) PromoValidationResponse {
	return PromoValidationResponse{
		Valid:      true,
		Code:       r.Code,
		Type:       string(r.Type),
		Value:      r.Value,
		Discount:   r.Discount,
		FinalPrice: r.FinalPrice,
	}
}
