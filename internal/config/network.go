package config

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
)

// Known networks.
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
)

// Network is the immutable address set of one Hedera network.
// A zero Router means the router is not deployed there.
type Network struct {
	Name          string
	Router        common.Address
	Factory       common.Address
	WrappedNative common.Address
	Quoter        common.Address
	MirrorNodeURL string
	PoolsAPIURL   string
	JSONRPCURL    string
}

// DefaultNetwork returns the built-in address set for name.
func DefaultNetwork(name string) (Network, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Mainnet:
		return Network{
			Name:          Mainnet,
			Router:        common.HexToAddress("0x00000000000000000000000000000000003c437a"),
			Factory:       common.HexToAddress("0x0000000000000000000000000000000000103780"),
			WrappedNative: common.HexToAddress("0x0000000000000000000000000000000000163b5a"),
			Quoter:        common.HexToAddress("0x00000000000000000000000000000000003c4370"),
			MirrorNodeURL: "https://mainnet-public.mirrornode.hedera.com/api/v1",
			PoolsAPIURL:   "https://api.saucerswap.finance",
			JSONRPCURL:    "https://mainnet.hashio.io/api",
		}, nil
	case Testnet:
		return Network{
			Name:          Testnet,
			Factory:       common.HexToAddress("0x00000000000000000000000000000000000026e7"),
			WrappedNative: common.HexToAddress("0x0000000000000000000000000000000000003ad1"),
			Quoter:        common.HexToAddress("0x00000000000000000000000000000000001535b2"),
			MirrorNodeURL: "https://testnet.mirrornode.hedera.com/api/v1",
			PoolsAPIURL:   "https://test-api.saucerswap.finance",
			JSONRPCURL:    "https://testnet.hashio.io/api",
		}, nil
	default:
		return Network{}, apperrors.Configuration("unknown network " + name)
	}
}

// ResolveNetwork returns the default address set of the configured network
// with file overrides applied.
func (c *Config) ResolveNetwork() (Network, error) {
	n, err := DefaultNetwork(c.Network)
	if err != nil {
		return Network{}, err
	}

	overrides := []struct {
		field string
		value string
		dst   *common.Address
	}{
		{"contracts.router", c.Contracts.Router, &n.Router},
		{"contracts.factory", c.Contracts.Factory, &n.Factory},
		{"contracts.wrapped_native", c.Contracts.WrappedNative, &n.WrappedNative},
		{"contracts.quoter", c.Contracts.Quoter, &n.Quoter},
	}
	for _, o := range overrides {
		v := strings.TrimSpace(o.value)
		if v == "" {
			continue
		}
		if !common.IsHexAddress(v) {
			return Network{}, apperrors.Configuration(o.field + " is not an EVM address")
		}
		*o.dst = common.HexToAddress(v)
	}

	if v := strings.TrimSpace(c.MirrorNodeURL); v != "" {
		n.MirrorNodeURL = v
	}
	if v := strings.TrimSpace(c.PoolsAPIURL); v != "" {
		n.PoolsAPIURL = v
	}
	if v := strings.TrimSpace(c.JSONRPCURL); v != "" {
		n.JSONRPCURL = v
	}
	return n, nil
}
