package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AllocationShare is the part of an allocated amount that one funding
// source carries.
type AllocationShare struct {
	Source FundingSource
	Amount decimal.Decimal
}

// toCents converts an amount to integer cents. All allocation arithmetic is
// done in cents so that shares always add up exactly.
func toCents(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// fromCents converts integer cents back to a decimal amount.
func fromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(decimal.NewFromInt(100))
}

// Allocate splits amount across all funding sources with a positive
// available balance.
//
// The split is as even as possible: the amount is distributed in rounds,
// each round splitting the remainder evenly across the sources that still
// have capacity and clamping every share at its source's available balance.
// Sources at capacity drop out and the overflow is redistributed in the
// next round, so whenever the aggregate pre-check passes, the full amount
// is placed.
//
// The returned shares are in catalog order, contain only sources with a
// non-zero share, and always add up to exactly the requested amount in
// cents. No share exceeds its source's available balance.
func Allocate(amount decimal.Decimal, sources []FundingSource) ([]AllocationShare, error) {
	if !amount.IsPositive() {
		return nil, ErrAmountNotPositive
	}

	eligible := Eligible(sources)

	capacity := make([]int64, len(eligible))
	allocated := make([]int64, len(eligible))

	var total int64
	for i, source := range eligible {
		capacity[i] = toCents(source.Available)
		total += capacity[i]
	}

	requested := toCents(amount)
	if requested > total {
		return nil, fmt.Errorf("%w: %s requested, %s available", ErrInsufficientTotalFunds, fromCents(requested), fromCents(total))
	}

	remaining := requested
	open := len(eligible)

	for remaining > 0 && open > 0 {
		share := remaining / int64(open)
		extra := remaining % int64(open)

		// When the remainder is smaller than the number of open sources,
		// the first sources get one cent each
		remaining = 0
		open = 0

		for i := range eligible {
			free := capacity[i] - allocated[i]
			if free == 0 {
				continue
			}

			want := share
			if extra > 0 {
				want++
				extra--
			}

			if want > free {
				// The overflow goes back into the next round
				remaining += want - free
				want = free
			}

			allocated[i] += want
			if capacity[i]-allocated[i] > 0 {
				open++
			}
		}
	}

	shares := make([]AllocationShare, 0, len(eligible))
	for i, source := range eligible {
		if allocated[i] == 0 {
			continue
		}

		shares = append(shares, AllocationShare{
			Source: source,
			Amount: fromCents(allocated[i]),
		})
	}

	return shares, nil
}
