package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type Tier string

const (
	TierBasic    Tier = "BASIC"
	TierSilver   Tier = "SILVER"
	TierGold     Tier = "GOLD"
	TierPlatinum Tier = "PLATINUM"
)

var (
	platinumSpend = decimal.MustNew(5000, 0)
	goldSpend     = decimal.MustNew(2000, 0)
	silverSpend   = decimal.MustNew(500, 0)
)

// TierForSpend maps a cumulative spend to its loyalty tier.
func TierForSpend(spent decimal.Decimal) Tier {
	switch {
	case spent.Cmp(platinumSpend) >= 0:
		return TierPlatinum
	case spent.Cmp(goldSpend) >= 0:
		return TierGold
	case spent.Cmp(silverSpend) >= 0:
		return TierSilver
	default:
		return TierBasic
	}
}

type Client struct {
	ID           uint64
	Name         string
	Email        string
	Tier         Tier
	TotalOrders  int
	TotalSpent   decimal.Decimal
	FirstOrderAt *time.Time
	LastOrderAt  *time.Time
}

// RecordOrder applies a confirmed order of the given amount to the client's running totals.
func (c *Client) RecordOrder(amount decimal.Decimal, at time.Time) error {
	spent, err := c.TotalSpent.Add(amount)
	if err != nil {
		return err
	}
	c.TotalSpent = spent
	c.TotalOrders++
	if c.FirstOrderAt == nil {
		first := at
		c.FirstOrderAt = &first
	}
	last := at
	c.LastOrderAt = &last
	c.Tier = TierForSpend(c.TotalSpent)
	return nil
}
