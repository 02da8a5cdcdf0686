package hedera

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
)

// TokenRef holds the two representations of one token: the native
// shard.realm.num identifier and its long-zero EVM address.
type TokenRef struct {
	ID  string
	EVM common.Address
}

// ParseTokenRef resolves either "0.0.123456" or a long-zero EVM address into
// both forms. Anything else is INVALID_TOKEN_ADDRESS.
func ParseTokenRef(s string) (TokenRef, error) {
	s = strings.TrimSpace(s)

	if common.IsHexAddress(s) {
		addr := common.HexToAddress(s)
		id, err := EntityIDFromAddress(addr)
		if err != nil {
			return TokenRef{}, apperrors.InvalidTokenAddress(s)
		}
		return TokenRef{ID: id, EVM: addr}, nil
	}

	addr, err := AddressFromEntityID(s)
	if err != nil || addr == (common.Address{}) {
		return TokenRef{}, apperrors.InvalidTokenAddress(s)
	}
	return TokenRef{ID: canonicalID(addr), EVM: addr}, nil
}

// AddressFromEntityID encodes shard.realm.num as a long-zero address:
// 4 bytes shard, 8 bytes realm, 8 bytes num, all big-endian.
func AddressFromEntityID(id string) (common.Address, error) {
	parts := strings.Split(id, ".")
	if len(parts) != 3 {
		return common.Address{}, errors.Errorf("entity id %q: want shard.realm.num", id)
	}

	shard, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "entity id %q: shard", id)
	}
	realm, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "entity id %q: realm", id)
	}
	num, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return common.Address{}, errors.Wrapf(err, "entity id %q: num", id)
	}

	var addr common.Address
	binary.BigEndian.PutUint32(addr[0:4], uint32(shard))
	binary.BigEndian.PutUint64(addr[4:12], realm)
	binary.BigEndian.PutUint64(addr[12:20], num)
	return addr, nil
}

// EntityIDFromAddress maps a long-zero address (first 12 bytes zero, i.e.
// shard 0 realm 0) back to "0.0.num". The zero address and EVM aliases are
// rejected since they carry no entity number.
func EntityIDFromAddress(addr common.Address) (string, error) {
	for _, b := range addr[:12] {
		if b != 0 {
			return "", errors.Errorf("address %s is not a long-zero address", addr.Hex())
		}
	}
	if binary.BigEndian.Uint64(addr[12:20]) == 0 {
		return "", errors.New("zero address has no entity id")
	}
	return canonicalID(addr), nil
}

func canonicalID(addr common.Address) string {
	return fmt.Sprintf("%d.%d.%d",
		binary.BigEndian.Uint32(addr[0:4]),
		binary.BigEndian.Uint64(addr[4:12]),
		binary.BigEndian.Uint64(addr[12:20]),
	)
}
