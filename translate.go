package hpke

import (
	"errors"
	"fmt"

	"github.com/hpke-go/hpke/internal/kex"
)

// translateErr maps the internal/kex sentinel errors onto this package's
// exported ones, so callers can use errors.Is without reaching into an
// internal package. Any other error, including internal/kem's ErrEncap and
// ErrDecap, is returned unchanged.
func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, kex.ErrInvalidKeyExchange):
		return fmt.Errorf("%w: %v", ErrInvalidKeyExchange, err)
	case errors.Is(err, kex.ErrInvalidEncoding):
		return fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	default:
		return err
	}
}
