package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey derives a cache key from a computation's inputs. The parts are
// JSON-encoded and hashed together, so every component ChartKey or VargaKey
// passes in (birth moment, ayanamsa, house system, provider mode, division)
// contributes to the key. The prefix keeps natal and divisional entries in
// separate namespaces even when their inputs coincide.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash returns the full SHA-256 digest of data as 64 lowercase hex
// characters. Keys are never truncated; a colliding key would serve one
// birth moment's chart for another.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
