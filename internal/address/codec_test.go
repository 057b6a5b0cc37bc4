package address

import (
	"bytes"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

func testBytes(n int, seed byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = seed + byte(i*7)
	}
	return out
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, typ := range model.AddressTypes {
		for _, network := range model.Networks {
			for _, size := range []int{0, 1, 20, 32, 64} {
				data := testBytes(size, byte(len(typ)+len(network)))
				text, err := Encode(typ, network, data)
				require.NoError(t, err)
				require.True(t, strings.HasPrefix(text, Prefix(typ, network)+"1"))

				parsed, err := Decode(text)
				require.NoError(t, err)
				require.Equal(t, typ, parsed.Type)
				require.Equal(t, network, parsed.Network)
				require.True(t, bytes.Equal(data, parsed.Data), "data mismatch for %s", text)
				require.Equal(t, text, parsed.Original)

				again, err := Encode(parsed.Type, parsed.Network, parsed.Data)
				require.NoError(t, err)
				require.Equal(t, text, again)
			}
		}
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	data := testBytes(32, 1)
	a, err := Encode(model.AddressShielded, model.NetworkUndeployed, data)
	require.NoError(t, err)
	b, err := Encode(model.AddressShielded, model.NetworkUndeployed, data)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEncodeErrors(t *testing.T) {
	_, err := Encode("wallet", model.NetworkTestNet, testBytes(32, 0))
	require.ErrorIs(t, err, ErrInvalidAddressFormat)

	_, err = Encode(model.AddressUnshielded, "moon", testBytes(32, 0))
	require.ErrorIs(t, err, ErrInvalidAddressFormat)

	_, err = Encode(model.AddressUnshielded, model.NetworkTestNet, testBytes(200, 0))
	require.ErrorIs(t, err, ErrInvalidAddressFormat)
	require.ErrorContains(t, err, "exceeds")
}

func TestDecodeErrors(t *testing.T) {
	valid, err := Encode(model.AddressShielded, model.NetworkTestNet, testBytes(32, 3))
	require.NoError(t, err)

	words, err := bech32.ConvertBits(testBytes(32, 3), 8, 5, true)
	require.NoError(t, err)
	legacy, err := bech32.Encode(Prefix(model.AddressShielded, model.NetworkTestNet), words)
	require.NoError(t, err)
	foreign, err := bech32.EncodeM("bc", words)
	require.NoError(t, err)
	unknownType, err := bech32.EncodeM("mn_wallet_testnet", words)
	require.NoError(t, err)
	unknownNetwork, err := bech32.EncodeM("mn_addr_moon", words)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "empty", input: "", errIs: ErrInvalidAddressFormat},
		{name: "no separator", input: "mn_addr_testnet", errIs: ErrInvalidAddressFormat},
		{name: "foreign prefix", input: foreign, errIs: ErrInvalidAddressFormat},
		{name: "unknown type", input: unknownType, errIs: ErrInvalidAddressFormat},
		{name: "unknown network", input: unknownNetwork, errIs: ErrInvalidAddressFormat},
		{name: "upper case", input: strings.ToUpper(valid), errIs: ErrInvalidAddressFormat},
		{name: "too long", input: valid + strings.Repeat("q", MaxLength), errIs: ErrInvalidAddressFormat},
		{name: "bech32 checksum", input: legacy, errIs: ErrInvalidChecksum},
		{name: "corrupted tail", input: flipLast(valid), errIs: ErrInvalidChecksum},
		{name: "non charset char", input: valid[:len(valid)-1] + "b", errIs: ErrInvalidChecksum},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.input)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func flipLast(s string) string {
	last := s[len(s)-1]
	repl := byte('q')
	if last == 'q' {
		repl = 'p'
	}
	return s[:len(s)-1] + string(repl)
}

func TestValidate(t *testing.T) {
	text, err := Encode(model.AddressUnshielded, model.NetworkPreview, testBytes(32, 9))
	require.NoError(t, err)

	v := Validate(text)
	require.True(t, v.Valid)
	require.NoError(t, v.Err)
	require.Equal(t, model.AddressUnshielded, v.Parsed.Type)

	v = Validate("not-an-address")
	require.False(t, v.Valid)
	require.Nil(t, v.Parsed)
	require.ErrorIs(t, v.Err, ErrInvalidAddressFormat)

	require.True(t, IsUnshielded(text))
	require.False(t, IsShielded(text))
}

func TestTruncateForDisplay(t *testing.T) {
	require.Equal(t, "mn_addr_undeployed1qq", TruncateForDisplay("mn_addr_undeployed1qq"))

	text, err := Encode(model.AddressShielded, model.NetworkUndeployed, testBytes(32, 5))
	require.NoError(t, err)
	short := TruncateForDisplay(text)
	require.Equal(t, "mn_shield-addr_undeployed1..."+text[len(text)-8:], short)

	_, err = Decode(short)
	require.Error(t, err)
}

func TestTypeName(t *testing.T) {
	require.Equal(t, "Shielded Address", TypeName(model.AddressShielded))
	require.Equal(t, "custom", TypeName("custom"))
}
