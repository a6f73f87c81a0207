package hpke

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseModeRoundTrip(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemX25519HkdfSha256, KdfHkdfSha256, AeadAes128Gcm)
	require.NoError(err)

	skR, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)

	info := []byte("draxx them sklounst")
	aad := []byte("with my prayers")
	pt := []byte("hello from the sender")

	enc, sealer, err := suite.SetupBaseS(pkR, info)
	require.NoError(err)
	ct, err := sealer.Seal(aad, pt)
	require.NoError(err)

	opener, err := suite.SetupBaseR(enc, skR, info)
	require.NoError(err)
	got, err := opener.Open(aad, ct)
	require.NoError(err)
	require.Equal(pt, got)
}

func TestBaseModeWrongRecipientFailsToOpen(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemX25519HkdfSha256, KdfHkdfSha256, AeadChaCha20Poly1305)
	require.NoError(err)

	_, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)
	skOther, _, err := suite.GenerateKeyPair()
	require.NoError(err)

	enc, sealer, err := suite.SetupBaseS(pkR, []byte("info"))
	require.NoError(err)
	ct, err := sealer.Seal(nil, []byte("secret"))
	require.NoError(err)

	opener, err := suite.SetupBaseR(enc, skOther, []byte("info"))
	require.NoError(err)
	_, err = opener.Open(nil, ct)
	require.ErrorIs(err, ErrInvalidTag)
}

func TestPSKModeRoundTrip(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemX25519HkdfSha256, KdfHkdfSha256, AeadAes256Gcm)
	require.NoError(err)

	skR, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)

	psk := []byte("a shared secret known to both parties")
	pskID := []byte("psk-id-001")
	info := []byte("psk mode test")

	enc, sealer, err := suite.SetupPSKS(pkR, info, psk, pskID)
	require.NoError(err)
	ct, err := sealer.Seal(nil, []byte("psk-protected message"))
	require.NoError(err)

	opener, err := suite.SetupPSKR(enc, skR, info, psk, pskID)
	require.NoError(err)
	got, err := opener.Open(nil, ct)
	require.NoError(err)
	require.Equal([]byte("psk-protected message"), got)
}

func TestPSKModeRequiresMatchingPsk(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemX25519HkdfSha256, KdfHkdfSha256, AeadAes256Gcm)
	require.NoError(err)

	skR, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)

	enc, sealer, err := suite.SetupPSKS(pkR, nil, []byte("correct psk"), []byte("id"))
	require.NoError(err)
	ct, err := sealer.Seal(nil, []byte("msg"))
	require.NoError(err)

	opener, err := suite.SetupPSKR(enc, skR, nil, []byte("wrong psk"), []byte("id"))
	require.NoError(err)
	_, err = opener.Open(nil, ct)
	require.ErrorIs(err, ErrInvalidTag)
}

func TestPSKModeRejectsUnpairedInputs(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemX25519HkdfSha256, KdfHkdfSha256, AeadAes256Gcm)
	require.NoError(err)
	_, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)

	_, _, err = suite.SetupPSKS(pkR, nil, []byte("psk-without-id"), nil)
	require.ErrorIs(err, ErrInvalidPsk)
}

func TestAuthModeRoundTrip(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemP256HkdfSha256, KdfHkdfSha384, AeadChaCha20Poly1305)
	require.NoError(err)

	skR, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)
	skS, pkS, err := suite.GenerateKeyPair()
	require.NoError(err)

	info := []byte("auth mode test")
	enc, sealer, err := suite.SetupAuthS(pkR, skS, info)
	require.NoError(err)
	ct, err := sealer.Seal(nil, []byte("authenticated message"))
	require.NoError(err)

	opener, err := suite.SetupAuthR(enc, skR, pkS, info)
	require.NoError(err)
	got, err := opener.Open(nil, ct)
	require.NoError(err)
	require.Equal([]byte("authenticated message"), got)
}

func TestAuthModeRejectsWrongSenderKey(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemP256HkdfSha256, KdfHkdfSha384, AeadChaCha20Poly1305)
	require.NoError(err)

	skR, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)
	skS, _, err := suite.GenerateKeyPair()
	require.NoError(err)
	_, pkOtherS, err := suite.GenerateKeyPair()
	require.NoError(err)

	enc, sealer, err := suite.SetupAuthS(pkR, skS, nil)
	require.NoError(err)
	ct, err := sealer.Seal(nil, []byte("msg"))
	require.NoError(err)

	opener, err := suite.SetupAuthR(enc, skR, pkOtherS, nil)
	require.NoError(err)
	_, err = opener.Open(nil, ct)
	require.ErrorIs(err, ErrInvalidTag)
}

func TestAuthPSKModeRoundTrip(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemX25519HkdfSha256, KdfHkdfSha512, AeadAes128Gcm)
	require.NoError(err)

	skR, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)
	skS, pkS, err := suite.GenerateKeyPair()
	require.NoError(err)
	psk, pskID := []byte("shared secret"), []byte("id-42")

	enc, sealer, err := suite.SetupAuthPSKS(pkR, skS, nil, psk, pskID)
	require.NoError(err)
	ct, err := sealer.Seal(nil, []byte("belt and suspenders"))
	require.NoError(err)

	opener, err := suite.SetupAuthPSKR(enc, skR, pkS, nil, psk, pskID)
	require.NoError(err)
	got, err := opener.Open(nil, ct)
	require.NoError(err)
	require.Equal([]byte("belt and suspenders"), got)
}

func TestHybridKEMHasNoAuthMode(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemMlkem768X25519, KdfHkdfSha256, AeadChaCha20Poly1305)
	require.NoError(err)

	_, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)
	skS, _, err := suite.GenerateKeyPair()
	require.NoError(err)

	_, _, err = suite.SetupAuthS(pkR, skS, nil)
	require.ErrorIs(err, ErrAuthUnsupported)
}

func TestHybridKEMBaseModeRoundTrip(t *testing.T) {
	require := require.New(t)
	suite, err := NewSuite(KemMlkem768X25519, KdfHkdfSha256, AeadAes256Gcm)
	require.NoError(err)

	skR, pkR, err := suite.GenerateKeyPair()
	require.NoError(err)

	enc, ct, err := suite.SealBase(pkR, []byte("hybrid info"), nil, []byte("post-quantum secret"))
	require.NoError(err)
	pt, err := suite.OpenBase(enc, skR, []byte("hybrid info"), nil, ct)
	require.NoError(err)
	require.Equal([]byte("post-quantum secret"), pt)
}

func TestCiphersuiteMatrixSingleShotRoundTrip(t *testing.T) {
	kems := []KemID{KemX25519HkdfSha256, KemP256HkdfSha256}
	kdfs := []KdfID{KdfHkdfSha256, KdfHkdfSha384, KdfHkdfSha512}
	aeads := []AeadID{AeadAes128Gcm, AeadAes256Gcm, AeadChaCha20Poly1305}

	for _, kemID := range kems {
		for _, kdfID := range kdfs {
			for _, aeadID := range aeads {
				kemID, kdfID, aeadID := kemID, kdfID, aeadID
				t.Run("", func(t *testing.T) {
					require := require.New(t)
					suite, err := NewSuite(kemID, kdfID, aeadID)
					require.NoError(err)

					skR, pkR, err := suite.GenerateKeyPair()
					require.NoError(err)

					enc, ct, err := suite.SealBase(pkR, []byte("matrix"), []byte("aad"), []byte("payload"))
					require.NoError(err)
					pt, err := suite.OpenBase(enc, skR, []byte("matrix"), []byte("aad"), ct)
					require.NoError(err)
					require.Equal([]byte("payload"), pt)
				})
			}
		}
	}
}

func TestNewSuiteRejectsUnknownIDs(t *testing.T) {
	require := require.New(t)
	_, err := NewSuite(0xBEEF, KdfHkdfSha256, AeadAes128Gcm)
	require.ErrorIs(err, ErrInvalidEncoding)
}
