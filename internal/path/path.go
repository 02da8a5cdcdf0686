package path

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

const (
	// FeeSize is the width of an encoded fee tier in bytes.
	FeeSize = 3
	// MaxFee is the largest fee tier representable in FeeSize bytes.
	MaxFee = 1<<24 - 1

	hopSize = FeeSize + common.AddressLength
)

// FeeHex renders a fee tier as "0x" followed by exactly six lowercase hex
// digits, e.g. 3000 -> "0x000bb8". Fees above MaxFee panic.
func FeeHex(fee uint32) string {
	if fee > MaxFee {
		panic(fmt.Sprintf("path: fee %d does not fit in %d bytes", fee, FeeSize))
	}
	return fmt.Sprintf("0x%06x", fee)
}

// ParseFeeHex is the inverse of FeeHex. Malformed input panics: fee strings
// are produced by FeeHex and never come from users.
func ParseFeeHex(feeHex string) uint32 {
	s := strings.TrimPrefix(strings.ToLower(feeHex), "0x")
	if len(s) != 2*FeeSize {
		panic(fmt.Sprintf("path: fee %q must be %d hex digits", feeHex, 2*FeeSize))
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		panic(fmt.Sprintf("path: fee %q: %v", feeHex, err))
	}
	return uint32(v)
}

// Encode builds a single-hop path: tokenIn(20B) ‖ fee(3B, big-endian) ‖ tokenOut(20B).
func Encode(tokenIn common.Address, feeHex string, tokenOut common.Address) []byte {
	out := make([]byte, 0, common.AddressLength+hopSize)
	out = append(out, tokenIn.Bytes()...)
	out = appendFee(out, ParseFeeHex(feeHex))
	out = append(out, tokenOut.Bytes()...)
	return out
}

// EncodeMultiHop builds token0 ‖ fee0 ‖ token1 ‖ fee1 ‖ ... ‖ tokenN.
func EncodeMultiHop(tokens []common.Address, fees []uint32) ([]byte, error) {
	if len(tokens) < 2 {
		return nil, errors.Errorf("path needs at least 2 tokens, got %d", len(tokens))
	}
	if len(fees) != len(tokens)-1 {
		return nil, errors.Errorf("path with %d tokens needs %d fees, got %d", len(tokens), len(tokens)-1, len(fees))
	}

	out := make([]byte, 0, common.AddressLength+len(fees)*hopSize)
	out = append(out, tokens[0].Bytes()...)
	for i, fee := range fees {
		if fee > MaxFee {
			return nil, errors.Errorf("fee %d at hop %d does not fit in %d bytes", fee, i, FeeSize)
		}
		out = appendFee(out, fee)
		out = append(out, tokens[i+1].Bytes()...)
	}
	return out, nil
}

// Decode splits an encoded path back into its tokens and fee tiers.
func Decode(p []byte) ([]common.Address, []uint32, error) {
	if len(p) < common.AddressLength+hopSize || (len(p)-common.AddressLength)%hopSize != 0 {
		return nil, nil, errors.Errorf("invalid path length %d", len(p))
	}

	hops := (len(p) - common.AddressLength) / hopSize
	tokens := make([]common.Address, 0, hops+1)
	fees := make([]uint32, 0, hops)

	tokens = append(tokens, common.BytesToAddress(p[:common.AddressLength]))
	for off := common.AddressLength; off < len(p); off += hopSize {
		f := p[off : off+FeeSize]
		fees = append(fees, uint32(f[0])<<16|uint32(f[1])<<8|uint32(f[2]))
		tokens = append(tokens, common.BytesToAddress(p[off+FeeSize:off+hopSize]))
	}
	return tokens, fees, nil
}

func appendFee(b []byte, fee uint32) []byte {
	return append(b, byte(fee>>16), byte(fee>>8), byte(fee))
}
