package kex

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestP256DHRoundTrip(t *testing.T) {
	require := require.New(t)
	p := P256{}

	skA, pkA, err := p.GenerateKeyPair(rand.Reader)
	require.NoError(err)
	skB, pkB, err := p.GenerateKeyPair(rand.Reader)
	require.NoError(err)

	dh1, err := p.DH(skA, pkB)
	require.NoError(err)
	dh2, err := p.DH(skB, pkA)
	require.NoError(err)
	require.Equal(dh1, dh2)
}

func TestP256SerializeRoundTrip(t *testing.T) {
	require := require.New(t)
	p := P256{}
	sk, pk, err := p.GenerateKeyPair(rand.Reader)
	require.NoError(err)

	pk2, err := p.DeserializePublicKey(pk.Bytes())
	require.NoError(err)
	require.Equal(pk.Bytes(), pk2.Bytes())

	sk2, err := p.DeserializePrivateKey(sk.Bytes())
	require.NoError(err)
	require.Equal(sk.Bytes(), sk2.Bytes())
}

func TestP256DeserializeRejectsWrongLength(t *testing.T) {
	require := require.New(t)
	p := P256{}
	_, err := p.DeserializePublicKey(make([]byte, 64))
	require.ErrorIs(err, ErrInvalidEncoding)
}
