package hedera

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/saucerswap-normaliser/internal/apperrors"
)

func TestParseTokenRef(t *testing.T) {
	t.Parallel()

	whbar := common.HexToAddress("0x0000000000000000000000000000000000163b5a")

	tests := []struct {
		name    string
		input   string
		wantID  string
		wantEVM common.Address
	}{
		{name: "entity id", input: "0.0.1456986", wantID: "0.0.1456986", wantEVM: whbar},
		{name: "long-zero address", input: "0x0000000000000000000000000000000000163b5a", wantID: "0.0.1456986", wantEVM: whbar},
		{name: "upper-case hex", input: "0x0000000000000000000000000000000000163B5A", wantID: "0.0.1456986", wantEVM: whbar},
		{name: "surrounding spaces", input: "  0.0.1456986 ", wantID: "0.0.1456986", wantEVM: whbar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ref, err := ParseTokenRef(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.wantID, ref.ID)
			require.Equal(t, tt.wantEVM, ref.EVM)
		})
	}
}

func TestParseTokenRef_Invalid(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"HBAR",
		"0.0",
		"0.0.x",
		"0.0.-1",
		"0x1234",
		"0x0000000000000000000000000000000000000000",
		"0x6B175474E89094C44Da98b954EedeAC495271d0F",
	}

	for _, in := range inputs {
		_, err := ParseTokenRef(in)
		assert.ErrorIs(t, err, apperrors.ErrInvalidTokenAddress, "input %q", in)
	}
}

func TestEntityIDRoundTrip(t *testing.T) {
	t.Parallel()

	addr, err := AddressFromEntityID("0.0.3949434")
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0x00000000000000000000000000000000003c437a"), addr)

	id, err := EntityIDFromAddress(addr)
	require.NoError(t, err)
	require.Equal(t, "0.0.3949434", id)
}
