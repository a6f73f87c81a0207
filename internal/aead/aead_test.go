package aead

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, scheme Scheme) {
	t.Helper()
	require := require.New(t)

	key := make([]byte, scheme.Nk())
	_, err := rand.Read(key)
	require.NoError(err)
	nonce := make([]byte, scheme.Nn())
	_, err = rand.Read(nonce)
	require.NoError(err)

	pt := []byte("draxx them sklounst")
	aad := []byte("with my prayers")

	ct, err := scheme.Seal(key, nonce, aad, pt)
	require.NoError(err)
	require.Len(ct, len(pt)+scheme.Nt())

	got, err := scheme.Open(key, nonce, aad, ct)
	require.NoError(err)
	require.Equal(pt, got)

	tampered := append([]byte(nil), ct...)
	tampered[0] ^= 0x01
	_, err = scheme.Open(key, nonce, aad, tampered)
	require.ErrorIs(err, ErrInvalidTag)

	_, err = scheme.Open(key, nonce, []byte("wrong aad"), ct)
	require.ErrorIs(err, ErrInvalidTag)
}

func TestAesGcm128RoundTrip(t *testing.T) { roundTrip(t, AesGcm128) }
func TestAesGcm256RoundTrip(t *testing.T) { roundTrip(t, AesGcm256) }
func TestChaCha20Poly1305RoundTrip(t *testing.T) { roundTrip(t, ChaCha20Poly1305) }
