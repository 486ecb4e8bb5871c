package ledger

import "math/bits"

// Share is one investor's computed cut of a confirmed repayment.
type Share struct {
	Investor string `json:"investor"`
	Amount   int64  `json:"amount"`
}

// ConfirmPayment records a repayment against a funded asset and
// computes the proportional investor distribution. Cumulative payments
// are capped at the face amount; the payment that reaches it flips the
// asset to paid, its terminal state.
//
// The distribution is returned to the caller for settlement; the
// ledger never moves tokens itself. Shares round down against the face
// amount; whatever rounding leaves over goes to the last investor in
// first-investment order, so the shares always sum to exactly amount.
func (l *Ledger) ConfirmPayment(assetID string, amount int64) (Asset, []Share, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.assets[assetID]
	if !ok {
		return Asset{}, nil, ErrAssetNotFound
	}
	if !a.Funded {
		return Asset{}, nil, ErrAssetNotFunded
	}
	if a.Paid {
		return Asset{}, nil, ErrAlreadyPaid
	}
	if amount <= 0 || amount > a.FaceAmount-a.PaidAmount {
		return Asset{}, nil, ErrInvalidAmount
	}

	shares := l.distribute(a, amount)

	a.PaidAmount += amount
	if a.PaidAmount == a.FaceAmount {
		a.Paid = true
	}
	l.counters.TotalPaid += amount

	l.publish(Event{
		Type:       EventPaymentConfirmed,
		AssetID:    a.ID,
		BasketID:   a.BasketID,
		Originator: a.Originator,
		Amount:     amount,
		At:         l.now(),
	})
	return *a, shares, nil
}

// distribute computes each investor's proportional share of a repaid
// amount. Caller holds the lock. Returns nil when nobody invested; the
// repaid amount then stays with the host.
func (l *Ledger) distribute(a *Asset, amount int64) []Share {
	investors := l.investorOrder[a.ID]
	if len(investors) == 0 {
		return nil
	}
	allocs := l.allocations[a.ID]

	shares := make([]Share, 0, len(investors))
	var distributed int64
	for _, inv := range investors {
		s := mulDiv(allocs[inv], amount, a.FaceAmount)
		distributed += s
		shares = append(shares, Share{Investor: inv, Amount: s})
	}
	shares[len(shares)-1].Amount += amount - distributed
	return shares
}

// mulDiv computes alloc*amount/face without overflowing the int64
// intermediate product. All three inputs are non-negative and alloc
// never exceeds face, so the quotient is at most amount and Div64
// cannot panic.
func mulDiv(alloc, amount, face int64) int64 {
	hi, lo := bits.Mul64(uint64(alloc), uint64(amount))
	q, _ := bits.Div64(hi, lo, uint64(face))
	return int64(q)
}
