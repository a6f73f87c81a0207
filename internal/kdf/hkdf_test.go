package kdf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabeledExpandDeterministic(t *testing.T) {
	require := require.New(t)
	suiteID := []byte("HPKE\x00\x20\x00\x01\x00\x03")
	prk := HkdfSha256.Extract([]byte("salt"), []byte("ikm"))

	out1, err := LabeledExpand(HkdfSha256, prk, suiteID, []byte("key"), []byte("info"), 32)
	require.NoError(err)
	out2, err := LabeledExpand(HkdfSha256, prk, suiteID, []byte("key"), []byte("info"), 32)
	require.NoError(err)
	require.Equal(out1, out2)
	require.Len(out1, 32)
}

func TestLabeledExpandDiffersByLabel(t *testing.T) {
	require := require.New(t)
	suiteID := []byte("HPKE\x00\x20\x00\x01\x00\x03")
	prk := HkdfSha256.Extract(nil, []byte("ikm"))

	key, err := LabeledExpand(HkdfSha256, prk, suiteID, []byte("key"), []byte("info"), 32)
	require.NoError(err)
	nonce, err := LabeledExpand(HkdfSha256, prk, suiteID, []byte("base_nonce"), []byte("info"), 32)
	require.NoError(err)
	require.NotEqual(key, nonce)
}

func TestLabeledExpandRejectsOversizeOutput(t *testing.T) {
	require := require.New(t)
	prk := HkdfSha256.Extract(nil, []byte("ikm"))
	_, err := LabeledExpand(HkdfSha256, prk, []byte("suite"), []byte("key"), nil, 255*32+1)
	require.ErrorIs(err, ErrInvalidKdfLength)
}

func TestHkdfSchemeDigestSizes(t *testing.T) {
	require := require.New(t)
	require.Equal(32, HkdfSha256.Nh())
	require.Equal(48, HkdfSha384.Nh())
	require.Equal(64, HkdfSha512.Nh())
}
