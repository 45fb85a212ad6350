package utils

import (
	"fmt"

	"github.com/govalues/decimal"
)

// MoneyScale is the number of digits kept after the decimal point for monetary amounts.
const MoneyScale = 2

// RoundHalfUp rounds d to scale digits, ties away from zero.
func RoundHalfUp(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if d.Scale() <= scale {
		return d.Pad(scale), nil
	}

	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}

	abs, err := d.Abs().Add(half)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}
	rounded := abs.Trunc(scale)
	if d.IsNeg() {
		rounded = rounded.Neg()
	}
	return rounded.Pad(scale), nil
}

// RoundMoney rounds an amount to cents, half-up.
func RoundMoney(d decimal.Decimal) (decimal.Decimal, error) {
	return RoundHalfUp(d, MoneyScale)
}

// LineTotal returns the exact quantity x price product.
func LineTotal(quantity int, price decimal.Decimal) (decimal.Decimal, error) {
	q, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}
	total, err := price.Mul(q)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}
	return total, nil
}
