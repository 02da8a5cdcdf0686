package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()

	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoad(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvNetwork, "")
	t.Setenv(EnvOperatorID, "")

	p := writeFile(t, "config.yaml", `
network: testnet
api_key: file-key
operator_account_id: 0.0.1001
deadline: 2m
pools_rate_limit: 2.5
listen_addr: ":8080"
contracts:
  router: "0x0000000000000000000000000000000000004b40"
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, Testnet, cfg.Network)
	require.Equal(t, "file-key", cfg.APIKey)
	require.Equal(t, "0.0.1001", cfg.OperatorAccountID)
	require.Equal(t, 2*time.Minute, cfg.Deadline)
	require.InDelta(t, 2.5, cfg.PoolsRateLimit, 1e-9)
	require.Equal(t, ":8080", cfg.ListenAddr)

	// defaults
	require.Equal(t, uint64(3_000_000), cfg.SwapGasLimit)
	require.Equal(t, uint64(1_000_000), cfg.QuoteGasLimit)
	require.Equal(t, uint64(30_000), cfg.DecimalsGasLimit)
	require.Equal(t, uint64(100_000_000), cfg.GasPrice)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, BackendMirror, cfg.CallBackend)

	n, err := cfg.ResolveNetwork()
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0x0000000000000000000000000000000000004b40"), n.Router)
	require.Equal(t, common.HexToAddress("0x0000000000000000000000000000000000003ad1"), n.WrappedNative)
	require.Equal(t, "https://test-api.saucerswap.finance", n.PoolsAPIURL)
	require.Equal(t, "https://testnet.hashio.io/api", n.JSONRPCURL)
}

func TestLoad_JSONRPCBackend(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvNetwork, "")
	t.Setenv(EnvOperatorID, "")

	p := writeFile(t, "config.yaml", `
api_key: k
call_backend: JSONRPC
json_rpc_url: http://localhost:7546
`)

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, BackendJSONRPC, cfg.CallBackend)

	n, err := cfg.ResolveNetwork()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:7546", n.JSONRPCURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvNetwork, "MAINNET")
	t.Setenv(EnvOperatorID, "0.0.2002")

	p := writeFile(t, "config.yaml", "network: testnet\napi_key: file-key\n")

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "env-key", cfg.APIKey)
	require.Equal(t, Mainnet, cfg.Network)
	require.Equal(t, "0.0.2002", cfg.OperatorAccountID)
}

func TestLoad_NoFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvNetwork, "")
	t.Setenv(EnvOperatorID, "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Mainnet, cfg.Network)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvNetwork, "")
	t.Setenv(EnvOperatorID, "")

	t.Run("missing api key", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "network: mainnet\n"))
		require.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("unknown network", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "network: previewnet\napi_key: k\n"))
		require.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("bad override", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "api_key: k\ncontracts:\n  quoter: nope\n"))
		require.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "api_key: k\nlog_level: loud\n"))
		require.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("unknown call backend", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "api_key: k\ncall_backend: grpc\n"))
		require.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("bad call_from", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "api_key: k\ncall_from: nope\n"))
		require.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("bad operator account", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "api_key: k\noperator_account_id: alice\n"))
		require.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "c.yaml", "api_key: [\n"))
		require.Error(t, err)
	})
}

func TestDefaultNetwork(t *testing.T) {
	t.Parallel()

	mn, err := DefaultNetwork("mainnet")
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0x00000000000000000000000000000000003c437a"), mn.Router)
	require.Equal(t, common.HexToAddress("0x0000000000000000000000000000000000163b5a"), mn.WrappedNative)
	require.Equal(t, common.HexToAddress("0x00000000000000000000000000000000003c4370"), mn.Quoter)

	tn, err := DefaultNetwork("testnet")
	require.NoError(t, err)
	require.Equal(t, common.Address{}, tn.Router)

	_, err = DefaultNetwork("")
	require.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv(EnvOperatorID, "")
	require.NoError(t, os.Unsetenv(EnvOperatorID))

	p := writeFile(t, ".env", EnvOperatorID+"=0.0.3003\n")
	require.NoError(t, LoadDotEnv(p, filepath.Join(t.TempDir(), "missing.env")))
	require.Equal(t, "0.0.3003", os.Getenv(EnvOperatorID))
}

func TestCallSender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		want common.Address
	}{
		{name: "explicit", cfg: Config{CallFrom: "0x00000000000000000000000000000000000004d2", OperatorAccountID: "0.0.1001"}, want: common.HexToAddress("0x00000000000000000000000000000000000004d2")},
		{name: "operator long-zero", cfg: Config{OperatorAccountID: "0.0.1001"}, want: common.HexToAddress("0x00000000000000000000000000000000000003e9")},
		{name: "zero sender", cfg: Config{}, want: common.Address{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.cfg.CallSender()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
