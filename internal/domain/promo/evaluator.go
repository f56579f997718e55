package promo

import (
	"errors"
	"strings"
)

var ErrCodeNotFound = errors.New("invalid promo code")

type DiscountType string

const (
	TypePercentage DiscountType = "percentage"
	TypeFlat       DiscountType = "flat"
)

type Discount struct {
	Type  DiscountType
	Value int64
}

type Result struct {
	Code       string
	Discount   int64
	FinalPrice int64
	Type       DiscountType
	Value      int64
}

// Evaluator resolves promo codes against a fixed table. Codes are
// case-insensitive.
type Evaluator struct {
	codes map[string]Discount
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		codes: map[string]Discount{
			"SAVE10":    {Type: TypePercentage, Value: 10},
			"FLAT100":   {Type: TypeFlat, Value: 100},
			"WELCOME20": {Type: TypePercentage, Value: 20},
			"NEWYEAR25": {Type: TypePercentage, Value: 25},
		},
	}
}

// Evaluate applies a code to a price. Percentage discounts round to the
// nearest integer unit; flat discounts never exceed the price, so the final
// price cannot go negative.
func (e *Evaluator) Evaluate(code string, price int64) (*Result, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	discount, ok := e.codes[normalized]
	if !ok {
		return nil, ErrCodeNotFound
	}

	var off int64
	switch discount.Type {
	case TypePercentage:
		off = (price*discount.Value + 50) / 100
	case TypeFlat:
		off = min(discount.Value, price)
	}

	final := price - off
	if final < 0 {
		final = 0
	}

	return &Result{
		Code:       normalized,
		Discount:   off,
		FinalPrice: final,
		Type:       discount.Type,
		Value:      discount.Value,
	}, nil
}
