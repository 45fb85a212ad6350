package domain

import "github.com/govalues/decimal"

type PromoCode struct {
	ID                 uint64
	Code               string
	DiscountPercentage decimal.Decimal
	Active             bool
	MaxUsage           *int
	CurrentUsage       int
}

// HasRemainingUsage is true for uncapped codes and capped codes below their cap.
func (p *PromoCode) HasRemainingUsage() bool {
	if p.MaxUsage == nil {
		return true
	}
	return p.CurrentUsage < *p.MaxUsage
}
