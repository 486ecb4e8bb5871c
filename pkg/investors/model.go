package investors

import "time"

// Investor is a registered principal. Verification is flipped by the
// KYC flow (pkg/verify) and gates investment recording; the ledger core
// itself never sees it.
type Investor struct {
	ID         int64      `json:"id"`
	UUID       string     `json:"uuid"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Verified reports whether the investor has passed verification.
func (i Investor) Verified() bool {
	return i.VerifiedAt != nil
}
