package account

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/hedera"
)

//go:generate mockgen -source=resolver.go -destination=mock/lookup.go -package=mock Lookup

// Lookup maps a Hedera account id to its EVM address.
type Lookup interface {
	AccountEVMAddress(ctx context.Context, accountID string) (common.Address, error)
}

// Resolver turns a user supplied recipient into the EVM address written
// into the swap payload.
type Resolver struct {
	lookup   Lookup
	operator string
}

// NewResolver creates a Resolver. operatorID is the account used when no
// recipient is given; it may be empty.
func NewResolver(lookup Lookup, operatorID string) *Resolver {
	return &Resolver{lookup: lookup, operator: strings.TrimSpace(operatorID)}
}

// Resolve accepts an EVM address, a shard.realm.num account id or an empty
// string meaning the operator account.
func (r *Resolver) Resolve(ctx context.Context, recipient string) (common.Address, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		if r.operator == "" {
			return common.Address{}, apperrors.Configuration("no recipient given and operator account is not set")
		}
		recipient = r.operator
	}

	if common.IsHexAddress(recipient) {
		return common.HexToAddress(recipient), nil
	}

	if _, err := hedera.AddressFromEntityID(recipient); err != nil {
		return common.Address{}, apperrors.Validation([]apperrors.FieldViolation{
			{Field: "recipient", Reason: "must be an account id (0.0.N) or an EVM address"},
		})
	}

	return r.lookup.AccountEVMAddress(ctx, recipient)
}
