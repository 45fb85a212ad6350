package domain

import "github.com/govalues/decimal"

type Product struct {
	ID          uint64
	Name        string
	Description string
	Price       decimal.Decimal
	Stock       int
	Deleted     bool
}
