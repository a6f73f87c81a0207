package kdf

import (
	"crypto/sha256"
	"crypto/sha512"
)

// HkdfSha256 is HKDF-SHA256, KdfID 0x0001, Nh = 32.
var HkdfSha256 Scheme = hkdfScheme{name: "HKDF-SHA256", newH: sha256.New, nh: sha256.Size}

// HkdfSha384 is HKDF-SHA384, KdfID 0x0002, Nh = 48.
var HkdfSha384 Scheme = hkdfScheme{name: "HKDF-SHA384", newH: sha512.New384, nh: sha512.Size384}

// HkdfSha512 is HKDF-SHA512, KdfID 0x0003, Nh = 64.
var HkdfSha512 Scheme = hkdfScheme{name: "HKDF-SHA512", newH: sha512.New, nh: sha512.Size}
