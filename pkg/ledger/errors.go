package ledger

import "errors"

var (
	ErrDuplicateAsset          = errors.New("asset id already exists")
	ErrAssetNotFound           = errors.New("asset not found")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidRiskScore        = errors.New("risk score must be between 0 and 100")
	ErrInvalidAssetType        = errors.New("invalid asset type")
	ErrAlreadyFunded           = errors.New("asset already funded")
	ErrAlreadyPaid             = errors.New("asset already paid")
	ErrAssetNotFunded          = errors.New("asset not funded")
	ErrOverInvestment          = errors.New("investment exceeds asset face amount")
	ErrInsufficientPoolBalance = errors.New("insufficient pool balance")

	// ErrUnauthorized is reserved for the host layer; the ledger itself
	// never evaluates permissions.
	ErrUnauthorized = errors.New("unauthorized")
)
