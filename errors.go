// Copyright 2019 The age Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hpke

import "errors"

// The sentinel errors below are the tagged failure variants spec.md §7
// requires: every one is distinguishable from the others with errors.Is,
// and every non-nil error this package returns wraps exactly one of them.
// This is the teacher's own error idiom (a small set of sentinel values,
// wrapped with fmt.Errorf("...: %w", ...) at call sites) refined to the
// one-sentinel-per-failure-mode granularity spec.md demands, following
// DataDog/go-secure-sdk's crypto/kem package.
var (
	// ErrInvalidEncoding is returned when a serialized key or AEAD tag has
	// the wrong byte length for its scheme.
	ErrInvalidEncoding = errors.New("hpke: invalid encoding")

	// ErrInvalidKeyExchange is returned when a raw Diffie-Hellman result is
	// the all-zero string.
	ErrInvalidKeyExchange = errors.New("hpke: invalid key exchange")

	// ErrInvalidPsk is returned when a PSK and its psk_id are not both
	// present or both absent.
	ErrInvalidPsk = errors.New("hpke: invalid pre-shared key")

	// ErrInvalidKdfLength is returned when a labeled_expand or Export call
	// asks for more than 255*Nh bytes of output.
	ErrInvalidKdfLength = errors.New("hpke: invalid KDF output length")

	// ErrInvalidTag is returned by Open on AEAD authentication failure.
	ErrInvalidTag = errors.New("hpke: invalid authentication tag")

	// ErrEncryption is returned by Seal on an unspecified AEAD failure.
	ErrEncryption = errors.New("hpke: encryption failed")

	// ErrSeqOverflow is returned by Seal/Open once a context's sequence
	// counter has been exhausted; the context refuses all further use.
	ErrSeqOverflow = errors.New("hpke: sequence counter exhausted")

	// ErrAuthUnsupported is returned by the Auth/AuthPsk Setup functions
	// when the suite's KEM has no sender-authentication mode (the bonus
	// hybrid MLKEM768X25519 backend; see DESIGN.md).
	ErrAuthUnsupported = errors.New("hpke: KEM does not support Auth mode")
)
