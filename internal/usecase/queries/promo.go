package queries

import (
	"bookit/internal/domain/promo"
)

// PromoQueries wraps the pure evaluator so the handler layer depends on a
// usecase interface like everywhere else.
type PromoQueries interface {
	Validate(code string, price int64) (*promo.Result, error)
}

type promoQueriesImpl struct {
	evaluator *promo.Evaluator
}

func NewPromoQueries(evaluator *promo.Evaluator) PromoQueries {
	return &promoQueriesImpl{evaluator: evaluator}
}

func (q *promoQueriesImpl) Validate(code string, price int64) (*promo.Result, error) {
	return q.evaluator.Evaluate(code, price)
}
