package service

import (
	"context"
	"fmt"

	"github.com/MikeRez0/ypsmartshop/internal/core/domain"
	"github.com/MikeRez0/ypsmartshop/internal/core/port"
	"github.com/MikeRez0/ypsmartshop/internal/core/utils"
	"github.com/govalues/decimal"
	"go.uber.org/zap"
)

type loyaltyRule struct {
	threshold decimal.Decimal
	rate      decimal.Decimal
}

var loyaltyRules = map[domain.Tier]loyaltyRule{
	domain.TierSilver:   {threshold: decimal.MustNew(500, 0), rate: decimal.MustNew(5, 2)},
	domain.TierGold:     {threshold: decimal.MustNew(800, 0), rate: decimal.MustNew(10, 2)},
	domain.TierPlatinum: {threshold: decimal.MustNew(1200, 0), rate: decimal.MustNew(15, 2)},
}

var promoRate = decimal.MustNew(5, 2)

type PricingEngine struct {
	promo   port.PromoRegistry
	taxRate decimal.Decimal
	logger  *zap.Logger
}

func NewPricingEngine(promo port.PromoRegistry, taxRate decimal.Decimal, logger *zap.Logger) (*PricingEngine, error) {
	if taxRate.IsNeg() {
		return nil, fmt.Errorf("tax rate must not be negative: %s", taxRate)
	}
	return &PricingEngine{
		promo:   promo,
		taxRate: taxRate,
		logger:  logger,
	}, nil
}

// Price computes the order amounts. Every rounded amount is rounded half-up to cents on its own
// step; the subtotal is the exact sum of exact line totals.
func (e *PricingEngine) Price(ctx context.Context,
	tier domain.Tier,
	items []domain.OrderItem,
	promoCode string,
) (*port.Pricing, error) {
	subtotal, err := e.subtotal(items)
	if err != nil {
		return nil, err
	}

	rate := decimal.Zero
	if rule, ok := loyaltyRules[tier]; ok && subtotal.Cmp(rule.threshold) >= 0 {
		rate = rule.rate
	}

	applied := ""
	if promoCode != "" && utils.ValidPromoCode(promoCode) {
		if _, err := e.promo.ValidateAndGet(ctx, promoCode); err != nil {
			return nil, err
		}
		rate, err = rate.Add(promoRate)
		if err != nil {
			return nil, fmt.Errorf("math error:%w", err)
		}
		applied = promoCode
	}

	discountRaw, err := subtotal.Mul(rate)
	if err != nil {
		return nil, fmt.Errorf("math error:%w", err)
	}
	discount, err := utils.RoundMoney(discountRaw)
	if err != nil {
		return nil, err
	}

	afterDiscount, err := subtotal.Sub(discount)
	if err != nil {
		return nil, fmt.Errorf("math error:%w", err)
	}

	taxRaw, err := afterDiscount.Mul(e.taxRate)
	if err != nil {
		return nil, fmt.Errorf("math error:%w", err)
	}
	tax, err := utils.RoundMoney(taxRaw)
	if err != nil {
		return nil, err
	}

	totalRaw, err := afterDiscount.Add(tax)
	if err != nil {
		return nil, fmt.Errorf("math error:%w", err)
	}
	total, err := utils.RoundMoney(totalRaw)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("Priced order",
		zap.String("tier", string(tier)),
		zap.Stringer("subtotal", subtotal),
		zap.Stringer("discount_rate", rate),
		zap.Stringer("total", total))

	return &port.Pricing{
		Subtotal:        subtotal,
		DiscountRate:    rate,
		DiscountAmount:  discount,
		TaxAmount:       tax,
		TotalAmount:     total,
		RemainingAmount: total,
		PromoCode:       applied,
	}, nil
}

func (e *PricingEngine) subtotal(items []domain.OrderItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Decimal{}, domain.Validationf("order must contain at least one item")
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Quantity <= 0 {
			return decimal.Decimal{}, domain.Validationf("quantity of product %d must be positive", item.ProductID)
		}
		if item.UnitPrice.IsNeg() {
			return decimal.Decimal{}, domain.Validationf("price of product %d must not be negative", item.ProductID)
		}
		line, err := utils.LineTotal(item.Quantity, item.UnitPrice)
		if err != nil {
			return decimal.Decimal{}, err
		}
		subtotal, err = subtotal.Add(line)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
		}
	}
	return subtotal, nil
}
