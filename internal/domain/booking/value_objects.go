package booking

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrEmptyName    = errors.New("customer name cannot be empty")
	ErrInvalidEmail = errors.New("customer email is invalid")
	ErrEmptyPhone   = errors.New("customer phone cannot be empty")

	ErrNegativeDiscount = errors.New("discount cannot be negative")
	ErrNegativePrice    = errors.New("price cannot be negative")
)

type CustomerInfo struct {
	name  string
	email string
	phone string
}

func NewCustomerInfo(name, email, phone string) (CustomerInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CustomerInfo{}, ErrEmptyName
	}

	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return CustomerInfo{}, ErrInvalidEmail
	}

	phone = strings.TrimSpace(phone)
	if phone == "" {
		return CustomerInfo{}, ErrEmptyPhone
	}

	return CustomerInfo{name: name, email: email, phone: phone}, nil
}

func (c CustomerInfo) Name() string  { return c.name }
func (c CustomerInfo) Email() string { return c.email }
func (c CustomerInfo) Phone() string { return c.phone }

// Pricing carries the caller-supplied checkout amounts. They are copied
// verbatim into the booking; the server does not recompute them against the
// catalog price.
type Pricing struct {
	promoCode     *string
	discount      int64
	originalPrice int64
	totalPrice    int64
}

func NewPricing(promoCode *string, discount, originalPrice, totalPrice int64) (Pricing, error) {
	if discount < 0 {
		return Pricing{}, ErrNegativeDiscount
	}
	if originalPrice < 0 || totalPrice < 0 {
		return Pricing{}, ErrNegativePrice
	}
	if originalPrice == 0 {
		originalPrice = totalPrice
	}

	var code *string
	if promoCode != nil {
		trimmed := strings.ToUpper(strings.TrimSpace(*promoCode))
		if trimmed != "" {
			code = &trimmed
		}
	}

	return Pricing{
		promoCode:     code,
		discount:      discount,
		originalPrice: originalPrice,
		totalPrice:    totalPrice,
	}, nil
}

func (p Pricing) PromoCode() *string  { return p.promoCode }
func (p Pricing) Discount() int64     { return p.discount }
func (p Pricing) OriginalPrice() int64 { return p.originalPrice }
func (p Pricing) TotalPrice() int64   { return p.totalPrice }
