// Package snapshot provides the cache-aside memoization layer above the tax
// engine: identical normalized inputs hash to the same key and reuse the
// previously computed breakdown.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/camayank/jorss-gbo-taai-sub004/internal/domain"
)

// HashTaxReturn computes the deterministic content hash of a tax return.
//
// Requirements:
//   - Stable across processes and architectures: the encoding must not
//     depend on map iteration order or pointer identity.
//   - Sensitive to every dollar field: a one-cent change in any income
//     amount must produce a different hash.
//
// The return marshals through encoding/json, which emits struct fields in
// declaration order, so the encoding is canonical for a fixed set of types.
// The hash is sha256 over those bytes, hex-encoded.
func HashTaxReturn(ret *domain.TaxReturn) (string, error) {
	if ret == nil {
		return "", fmt.Errorf("cannot hash a nil tax return")
	}
	encoded, err := json.Marshal(ret)
	if err != nil {
		return "", fmt.Errorf("failed to serialize tax return for hashing: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
