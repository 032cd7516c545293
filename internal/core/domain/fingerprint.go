package domain

import (
	"crypto/sha256"
	"encoding/base64"
	"slices"
	"strconv"
)

// Fingerprint is a content digest of a dictionary's word set.
// It is safe to use as a file name component.
type Fingerprint string

// String returns the fingerprint as a string.
func (f Fingerprint) String() string {
	return string(f)
}

// ComputeFingerprint returns the fingerprint of words.
// The input is sorted before hashing so the result does not depend on its order.
func ComputeFingerprint(words []string) Fingerprint {
	sorted := slices.Clone(words)
	slices.Sort(sorted)

	h := sha256.New()
	for _, word := range sorted {
		_, _ = h.Write([]byte(word))
		_, _ = h.Write([]byte{0}) // Separator
	}

	// RawURLEncoding substitutes '+' and '/' and drops the '=' padding.
	return Fingerprint(base64.RawURLEncoding.EncodeToString(h.Sum(nil)))
}

// GraphKey addresses a cached graph by fingerprint and node count.
type GraphKey struct {
	Fingerprint Fingerprint
	NodeCount   int
}

// NewGraphKey computes the key for a loaded word list.
func NewGraphKey(words []string) GraphKey {
	return GraphKey{
		Fingerprint: ComputeFingerprint(words),
		NodeCount:   len(words),
	}
}

// String renders the key as "{fingerprint}-{node_count}".
func (k GraphKey) String() string {
	return k.Fingerprint.String() + "-" + strconv.Itoa(k.NodeCount)
}
