package kex

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestX25519DHRoundTrip(t *testing.T) {
	require := require.New(t)
	x := X25519{}

	skA, pkA, err := x.GenerateKeyPair(rand.Reader)
	require.NoError(err)
	skB, pkB, err := x.GenerateKeyPair(rand.Reader)
	require.NoError(err)

	dh1, err := x.DH(skA, pkB)
	require.NoError(err)
	dh2, err := x.DH(skB, pkA)
	require.NoError(err)
	require.Equal(dh1, dh2)
}

func TestX25519SkToPk(t *testing.T) {
	require := require.New(t)
	x := X25519{}
	sk, pk, err := x.GenerateKeyPair(rand.Reader)
	require.NoError(err)
	require.Equal(pk.Bytes(), x.SkToPk(sk).Bytes())
}

func TestX25519DeserializeRejectsWrongLength(t *testing.T) {
	require := require.New(t)
	x := X25519{}
	_, err := x.DeserializePublicKey(make([]byte, 31))
	require.ErrorIs(err, ErrInvalidEncoding)
	_, err = x.DeserializePrivateKey(make([]byte, 33))
	require.ErrorIs(err, ErrInvalidEncoding)
}

func TestX25519DHRejectsAllZeroResult(t *testing.T) {
	require := require.New(t)
	x := X25519{}

	// The all-zero public key forces an all-zero Diffie-Hellman output for
	// any private scalar; both draft-02 and RFC 9180 require this be
	// rejected rather than used as a shared secret.
	zeroPk, err := x.DeserializePublicKey(make([]byte, 32))
	require.NoError(err)
	sk, _, err := x.GenerateKeyPair(rand.Reader)
	require.NoError(err)

	_, err = x.DH(sk, zeroPk)
	require.ErrorIs(err, ErrInvalidKeyExchange)
}
