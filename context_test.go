package hpke

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpke-go/hpke/internal/aead"
	"github.com/hpke-go/hpke/internal/kdf"
)

func newTestCtx() *encdecCtx {
	return &encdecCtx{
		aeadScheme:     aead.ChaCha20Poly1305,
		kdfScheme:      kdf.HkdfSha256,
		suiteID:        []byte("HPKE\x00\x20\x00\x01\x00\x03"),
		key:            make([]byte, aead.ChaCha20Poly1305.Nk()),
		baseNonce:      make([]byte, aead.ChaCha20Poly1305.Nn()),
		seq:            make([]byte, aead.ChaCha20Poly1305.Nn()),
		exporterSecret: make([]byte, kdf.HkdfSha256.Nh()),
	}
}

func TestSealOpenRoundTrip(t *testing.T) {
	require := require.New(t)
	ctx := newTestCtx()
	sealer := &sealerContext{ctx}
	opener := &openerContext{newTestCtx()}

	pt := []byte("draxx them sklounst")
	aad := []byte("with my prayers")

	ct, err := sealer.Seal(aad, pt)
	require.NoError(err)
	got, err := opener.Open(aad, ct)
	require.NoError(err)
	require.Equal(pt, got)
}

func TestSealOpenSequenceLockstep(t *testing.T) {
	require := require.New(t)
	senderCtx := newTestCtx()
	receiverCtx := newTestCtx()
	sealer := &sealerContext{senderCtx}
	opener := &openerContext{receiverCtx}

	for i := 0; i < 5; i++ {
		ct, err := sealer.Seal(nil, []byte("message"))
		require.NoError(err)
		pt, err := opener.Open(nil, ct)
		require.NoError(err)
		require.Equal([]byte("message"), pt)
	}
}

func TestSequenceOverflow(t *testing.T) {
	require := require.New(t)
	ctx := newTestCtx()
	for i := range ctx.seq {
		ctx.seq[i] = 0xff
	}
	sealer := &sealerContext{ctx}

	// The last valid sequence number still succeeds...
	_, err := sealer.Seal(nil, []byte("last message"))
	require.NoError(err)
	require.True(ctx.overflowed)

	// ...and every call after that is refused, without touching the AEAD.
	_, err = sealer.Seal(nil, []byte("one too many"))
	require.ErrorIs(err, ErrSeqOverflow)
}

func TestExportIndependentOfSequenceState(t *testing.T) {
	require := require.New(t)
	ctx := newTestCtx()
	sealer := &sealerContext{ctx}

	before, err := sealer.Export([]byte("context"), 32)
	require.NoError(err)

	_, err = sealer.Seal(nil, []byte("advance the sequence counter"))
	require.NoError(err)

	after, err := sealer.Export([]byte("context"), 32)
	require.NoError(err)
	require.Equal(before, after)

	for i := range ctx.seq {
		ctx.seq[i] = 0xff
	}
	ctx.overflowed = true
	stillWorks, err := sealer.Export([]byte("context"), 32)
	require.NoError(err)
	require.Equal(before, stillWorks)
}

func TestSealDetachedOpenDetachedRoundTrip(t *testing.T) {
	require := require.New(t)
	senderCtx := newTestCtx()
	receiverCtx := newTestCtx()
	sealer := &sealerContext{senderCtx}
	opener := &openerContext{receiverCtx}

	pt := []byte("draxx them sklounst")
	aad := []byte("with my prayers")

	ct, tag, err := sealer.SealDetached(aad, pt)
	require.NoError(err)
	require.Len(tag, aead.ChaCha20Poly1305.Nt())

	got, err := opener.OpenDetached(aad, ct, tag)
	require.NoError(err)
	require.Equal(pt, got)
}
