package ledger

// CreateAssetInput carries the caller-supplied fields for a new asset.
// RiskScore and DocumentHash come from external collaborators and are
// stored as-is.
type CreateAssetInput struct {
	AssetID      string
	Originator   string
	FaceAmount   int64
	Unlockable   int64
	RiskScore    int
	BasketID     string
	AssetType    AssetType
	DocumentHash string
}

// CreateAsset registers a new asset in the unfunded, unpaid state and
// enrolls it into its basket.
func (l *Ledger) CreateAsset(in CreateAssetInput) (Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.assets[in.AssetID]; ok {
		return Asset{}, ErrDuplicateAsset
	}
	if in.FaceAmount <= 0 || in.Unlockable < 0 || in.Unlockable > in.FaceAmount {
		return Asset{}, ErrInvalidAmount
	}
	if in.RiskScore < 0 || in.RiskScore > 100 {
		return Asset{}, ErrInvalidRiskScore
	}
	if !validAssetType(in.AssetType) {
		return Asset{}, ErrInvalidAssetType
	}

	a := &Asset{
		ID:           in.AssetID,
		Originator:   in.Originator,
		FaceAmount:   in.FaceAmount,
		Unlockable:   in.Unlockable,
		RiskScore:    in.RiskScore,
		BasketID:     in.BasketID,
		DocumentHash: in.DocumentHash,
		AssetType:    in.AssetType,
		CreatedAt:    l.now(),
	}
	l.assets[a.ID] = a
	l.assetOrder = append(l.assetOrder, a.ID)

	b := l.getOrCreateBasket(in.BasketID)
	b.totalValue += in.FaceAmount
	b.assetIDs = append(b.assetIDs, a.ID)

	l.counters.TotalAssets++

	l.publish(Event{
		Type:       EventAssetCreated,
		AssetID:    a.ID,
		BasketID:   a.BasketID,
		Originator: a.Originator,
		Amount:     a.FaceAmount,
		At:         l.now(),
	})
	return *a, nil
}

// MarkFunded releases unlockAmount from the pool to the originator and
// flips the asset to funded. The amount actually released becomes the
// asset's effective unlockable, keeping the funded-total aggregate equal
// to the sum of unlockable over funded assets.
func (l *Ledger) MarkFunded(assetID string, unlockAmount int64) (Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.assets[assetID]
	if !ok {
		return Asset{}, ErrAssetNotFound
	}
	if a.Funded {
		return Asset{}, ErrAlreadyFunded
	}
	if unlockAmount <= 0 || unlockAmount > a.FaceAmount {
		return Asset{}, ErrInvalidAmount
	}
	if l.deposited-l.released < unlockAmount {
		return Asset{}, ErrInsufficientPoolBalance
	}

	l.released += unlockAmount
	a.Funded = true
	a.Unlockable = unlockAmount
	l.counters.TotalFunded += unlockAmount

	l.publish(Event{
		Type:       EventAssetFunded,
		AssetID:    a.ID,
		BasketID:   a.BasketID,
		Originator: a.Originator,
		Amount:     unlockAmount,
		At:         l.now(),
	})
	return *a, nil
}

// UpdateRiskScore replaces the asset's risk score. Allowed any time
// before the asset is fully paid. Emits only an internal audit entry.
func (l *Ledger) UpdateRiskScore(assetID string, newScore int) (Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.assets[assetID]
	if !ok {
		return Asset{}, ErrAssetNotFound
	}
	if a.Paid {
		return Asset{}, ErrAlreadyPaid
	}
	if newScore < 0 || newScore > 100 {
		return Asset{}, ErrInvalidRiskScore
	}

	a.RiskScore = newScore

	l.publish(Event{
		Type:    EventRiskScoreUpdated,
		AssetID: a.ID,
		Amount:  int64(newScore),
		At:      l.now(),
	})
	return *a, nil
}

// ReassignBasket moves an unfunded asset between baskets, keeping both
// baskets' totals and membership lists consistent. The basket is frozen
// once the asset is funded.
func (l *Ledger) ReassignBasket(assetID, newBasketID string) (Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.assets[assetID]
	if !ok {
		return Asset{}, ErrAssetNotFound
	}
	if a.Funded {
		return Asset{}, ErrAlreadyFunded
	}

	// Investments may predate funding, so the asset's allocated total
	// moves with it; invested amounts always sum over current members.
	var allocated int64
	for _, v := range l.allocations[assetID] {
		allocated += v
	}

	old := l.baskets[a.BasketID]
	old.totalValue -= a.FaceAmount
	old.investedAmount -= allocated
	for i, id := range old.assetIDs {
		if id == assetID {
			old.assetIDs = append(old.assetIDs[:i], old.assetIDs[i+1:]...)
			break
		}
	}

	a.BasketID = newBasketID
	nb := l.getOrCreateBasket(newBasketID)
	nb.totalValue += a.FaceAmount
	nb.investedAmount += allocated
	nb.assetIDs = append(nb.assetIDs, assetID)

	l.publish(Event{
		Type:     EventBasketUpdated,
		AssetID:  a.ID,
		BasketID: newBasketID,
		At:       l.now(),
	})
	return *a, nil
}

// GetAssetInfo returns a snapshot of the asset.
func (l *Ledger) GetAssetInfo(assetID string) (Asset, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.assets[assetID]
	if !ok {
		return Asset{}, ErrAssetNotFound
	}
	return *a, nil
}

// ListAssets returns a snapshot of all assets in creation order.
func (l *Ledger) ListAssets() []Asset {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Asset, 0, len(l.assetOrder))
	for _, id := range l.assetOrder {
		out = append(out, *l.assets[id])
	}
	return out
}
