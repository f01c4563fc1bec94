package units

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok)
	return v
}

func Test_ParseEther(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.5", "1500000000000000000"},
		{"1", "1000000000000000000"},
		{"0.000000000000000001", "1"},
		{" 2.25 ", "2250000000000000000"},
		{"0", "0"},
		{"123456789.123456789123456789", "123456789123456789123456789"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseEther(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.want, got.String())
		})
	}
}

func Test_ParseEther_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1.2.3", "1e18", "0.0000000000000000001", "1,5"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseEther(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		})
	}
}

const (
	maxUint256Ether  = "115792089237316195423570985008687907853269984665640564039457.584007913129639935"
	overUint256Ether = "115792089237316195423570985008687907853269984665640564039457.584007913129639936"
)

func Test_ParseEther_Uint256Range(t *testing.T) {
	v, err := ParsePositiveEther(maxUint256Ether)
	require.NoError(t, err)
	assert.Equal(t, 256, v.BitLen())
	assert.Equal(t, maxUint256Ether, FormatEther(v))

	for _, in := range []string{
		overUint256Ether,
		"-" + overUint256Ether,
		"115792089237316195423570985008687907853269984665640564039458.584007913129639937",
	} {
		_, err := ParseEther(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, in)
	}
}

func Test_ParsePositiveEther(t *testing.T) {
	v, err := ParsePositiveEther("0.1")
	require.NoError(t, err)
	assert.Equal(t, "100000000000000000", v.String())

	_, err = ParsePositiveEther("0")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = ParsePositiveEther("-1")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func Test_FormatEther(t *testing.T) {
	assert.Equal(t, "1.5", FormatEther(mustBig(t, "1500000000000000000")))
	assert.Equal(t, "1.0", FormatEther(mustBig(t, "1000000000000000000")))
	assert.Equal(t, "0.0", FormatEther(big.NewInt(0)))
	assert.Equal(t, "0.0", FormatEther(nil))
	assert.Equal(t, "0.000000000000000001", FormatEther(big.NewInt(1)))
}

func Test_ParseFormatRoundTrip(t *testing.T) {
	for _, in := range []string{"1.5", "0.25", "42.000000000000000001"} {
		v, err := ParseEther(in)
		require.NoError(t, err)
		assert.Equal(t, in, FormatEther(v))
	}
}
