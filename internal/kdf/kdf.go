// Package kdf defines the HKDF-based key derivation capability used by the
// KEM combinator and the HPKE key schedule (draft-irtf-cfrg-hpke-02 §6.2).
//
// Scheme exposes raw Extract/Expand plus the two labeled operations every
// caller in this module actually uses: LabeledExtract and LabeledExpand
// bind a suite id and an RFC-style label into the HKDF input so that
// different components (KEM, mode, key schedule, exporter) of the same
// ciphersuite never collide on derived secrets.
package kdf

import (
	"encoding/binary"
	"errors"
	"hash"
	"io"

	"golang.org/x/crypto/hkdf"
)

// ErrInvalidKdfLength is returned by Expand/LabeledExpand when the requested
// output is longer than 255 times the hash's digest size, the HKDF-Expand
// domain limit.
var ErrInvalidKdfLength = errors.New("kdf: requested output exceeds 255*Nh")

// versionLabel is the label prefix used by every labeled_extract/expand
// call in draft-irtf-cfrg-hpke-02. Later drafts renamed this to "HPKE-v1";
// this module targets draft-02 and keeps the original string (see
// DESIGN.md and SPEC_FULL.md §9).
const versionLabel = "RFCXXXX "

// Scheme is a concrete HKDF instantiation over a fixed hash function.
type Scheme interface {
	Name() string
	// Nh is the underlying hash function's digest size in bytes.
	Nh() int
	Extract(salt, ikm []byte) []byte
	Expand(prk, info []byte, length int) ([]byte, error)
}

// LabeledExtract computes
// HKDF-Extract(salt, "RFCXXXX " || suite_id || label || ikm).
func LabeledExtract(k Scheme, salt, suiteID, label, ikm []byte) []byte {
	labeledIKM := make([]byte, 0, len(versionLabel)+len(suiteID)+len(label)+len(ikm))
	labeledIKM = append(labeledIKM, versionLabel...)
	labeledIKM = append(labeledIKM, suiteID...)
	labeledIKM = append(labeledIKM, label...)
	labeledIKM = append(labeledIKM, ikm...)
	return k.Extract(salt, labeledIKM)
}

// LabeledExpand computes
// HKDF-Expand(prk, I2OSP(L, 2) || "RFCXXXX " || suite_id || label || info, L).
func LabeledExpand(k Scheme, prk, suiteID, label, info []byte, length int) ([]byte, error) {
	if length > 255*k.Nh() {
		return nil, ErrInvalidKdfLength
	}
	labeledInfo := make([]byte, 2, 2+len(versionLabel)+len(suiteID)+len(label)+len(info))
	binary.BigEndian.PutUint16(labeledInfo[0:2], uint16(length))
	labeledInfo = append(labeledInfo, versionLabel...)
	labeledInfo = append(labeledInfo, suiteID...)
	labeledInfo = append(labeledInfo, label...)
	labeledInfo = append(labeledInfo, info...)
	return k.Expand(prk, labeledInfo, length)
}

// hkdfScheme is the shared implementation behind HkdfSha256/384/512: all
// three differ only in their hash.New constructor and digest size, exactly
// the way the teacher's internal/age/primitives.go hands hash.New
// constructors straight to golang.org/x/crypto/hkdf.
type hkdfScheme struct {
	name string
	newH func() hash.Hash
	nh   int
}

func (s hkdfScheme) Name() string { return s.name }
func (s hkdfScheme) Nh() int      { return s.nh }

func (s hkdfScheme) Extract(salt, ikm []byte) []byte {
	return hkdf.Extract(s.newH, ikm, salt)
}

func (s hkdfScheme) Expand(prk, info []byte, length int) ([]byte, error) {
	if length > 255*s.nh {
		return nil, ErrInvalidKdfLength
	}
	r := hkdf.Expand(s.newH, prk, info)
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, ErrInvalidKdfLength
	}
	return out, nil
}
