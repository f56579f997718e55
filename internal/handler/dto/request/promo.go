package request

type ValidatePromoRequest struct {
	Code  string `json:"code" binding:"required"`
	Price int64  `json:"price" binding:"required,gt=0"`
}
