package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
	"github.com/fleshka4/saucerswap-normaliser/internal/hedera"
)

// Environment variables overriding file values.
const (
	EnvAPIKey     = "SAUCERSWAP_API_KEY"
	EnvNetwork    = "SAUCERSWAP_NETWORK"
	EnvOperatorID = "HEDERA_OPERATOR_ID"
)

// Contract call backends.
const (
	BackendMirror  = "mirror"
	BackendJSONRPC = "jsonrpc"
)

// Contracts overrides per-network contract addresses. Empty fields keep the
// network default.
type Contracts struct {
	Router        string `yaml:"router"`
	Factory       string `yaml:"factory"`
	WrappedNative string `yaml:"wrapped_native"`
	Quoter        string `yaml:"quoter"`
}

// Config holds application configuration loaded from file and environment.
type Config struct {
	Network           string    `yaml:"network"`
	APIKey            string    `yaml:"api_key"`
	OperatorAccountID string    `yaml:"operator_account_id"`
	MirrorNodeURL     string    `yaml:"mirror_node_url"`
	PoolsAPIURL       string    `yaml:"pools_api_url"`
	JSONRPCURL        string    `yaml:"json_rpc_url"`
	CallBackend       string    `yaml:"call_backend"`
	CallFrom          string    `yaml:"call_from"`
	Contracts         Contracts `yaml:"contracts"`

	SwapGasLimit     uint64        `yaml:"swap_gas_limit"`
	QuoteGasLimit    uint64        `yaml:"quote_gas_limit"`
	DecimalsGasLimit uint64        `yaml:"decimals_gas_limit"`
	GasPrice         uint64        `yaml:"gas_price"`
	Deadline         time.Duration `yaml:"deadline"`

	PoolsRateLimit float64       `yaml:"pools_rate_limit"`
	HTTPTimeout    time.Duration `yaml:"http_timeout"`

	ListenAddr        string        `yaml:"listen_addr"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`

	LogLevel string `yaml:"log_level"`
}

// LoadDotEnv loads KEY=VALUE pairs from the given files (".env" if none)
// into the process environment. Missing files are ignored; variables that
// are already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.Wrapf(err, "godotenv.Load %s", f)
		}
	}
	return nil
}

// Load reads the YAML file at path (skipped when path is empty), applies
// environment overrides and defaults, and validates the result.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv(os.LookupEnv)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func decodeFile(path string, cfg *Config) (err error) {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "os.Open")
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "decoder.Decode")
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIKey); ok && strings.TrimSpace(v) != "" {
		c.APIKey = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvNetwork); ok && strings.TrimSpace(v) != "" {
		c.Network = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvOperatorID); ok && strings.TrimSpace(v) != "" {
		c.OperatorAccountID = strings.TrimSpace(v)
	}
}

func (c *Config) applyDefaults() {
	const defaultTimeout = 5 * time.Second

	c.Network = strings.ToLower(strings.TrimSpace(c.Network))
	if c.Network == "" {
		c.Network = Mainnet
	}
	c.CallBackend = strings.ToLower(strings.TrimSpace(c.CallBackend))
	if c.CallBackend == "" {
		c.CallBackend = BackendMirror
	}
	if c.SwapGasLimit == 0 {
		c.SwapGasLimit = 3_000_000
	}
	if c.QuoteGasLimit == 0 {
		c.QuoteGasLimit = 1_000_000
	}
	if c.DecimalsGasLimit == 0 {
		c.DecimalsGasLimit = 30_000
	}
	if c.GasPrice == 0 {
		c.GasPrice = 100_000_000
	}
	if c.Deadline == 0 {
		c.Deadline = 5 * time.Minute
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 10 * time.Second
	}
	if c.ListenAddr == "" {
		c.ListenAddr = ":1337"
	}
	if c.GraceTimeout == 0 {
		c.GraceTimeout = defaultTimeout
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = 8 * time.Second
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = defaultTimeout
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports missing or malformed settings as CONFIGURATION_ERROR.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return apperrors.Configuration(EnvAPIKey + " is not set")
	}
	if _, err := c.ResolveNetwork(); err != nil {
		return err
	}
	if c.CallBackend != BackendMirror && c.CallBackend != BackendJSONRPC {
		return apperrors.Configuration("unknown call_backend " + c.CallBackend)
	}
	if _, err := c.CallSender(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return apperrors.Configuration("unknown log_level " + c.LogLevel)
	}
	if c.Deadline < 0 {
		return apperrors.Configuration("deadline must be positive")
	}
	return nil
}

// CallSender is the "from" address of simulated contract calls: call_from
// when set, otherwise the operator account's long-zero address, otherwise
// the zero address.
func (c *Config) CallSender() (common.Address, error) {
	if v := strings.TrimSpace(c.CallFrom); v != "" {
		if !common.IsHexAddress(v) {
			return common.Address{}, apperrors.Configuration("call_from is not an EVM address")
		}
		return common.HexToAddress(v), nil
	}
	if v := strings.TrimSpace(c.OperatorAccountID); v != "" {
		addr, err := hedera.AddressFromEntityID(v)
		if err != nil {
			return common.Address{}, apperrors.Configuration("operator_account_id " + v + " is not an account id")
		}
		return addr, nil
	}
	return common.Address{}, nil
}
