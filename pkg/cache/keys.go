package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Keyer builds cache keys. Implementations must be deterministic: equal
// inputs yield equal keys.
type Keyer interface {
	// RouteKey identifies the report for a trip through stops on the map
	// whose contents hash to mapHash.
	RouteKey(mapHash string, stops []string, opts RouteKeyOpts) string

	// ReachKey identifies the list of locations reachable from one stop.
	ReachKey(mapHash, from string) string
}

// RouteKeyOpts are the planner settings that change a route's report.
type RouteKeyOpts struct {
	Heuristic bool `json:"heuristic"`
}

// DefaultKeyer hashes its inputs into prefixed keys such as "route:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RouteKey returns "route:" followed by a hash of all inputs.
func (DefaultKeyer) RouteKey(mapHash string, stops []string, opts RouteKeyOpts) string {
	return hashKey("route", mapHash, stops, opts)
}

// ReachKey returns "reach:" followed by a hash of all inputs.
func (DefaultKeyer) ReachKey(mapHash, from string) string {
	return hashKey("reach", mapHash, from)
}

// KeyType returns the prefix of a key built by a Keyer, e.g. "route".
// Scope prefixes added by ScopedKeyer are skipped.
func KeyType(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 2 {
		return "unknown"
	}
	return parts[len(parts)-2]
}

// Hash returns the hex SHA-256 of data. Road maps use it as their digest, so
// any edit to a map file changes every key derived from it.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey returns prefix + ":" + the hash of the JSON encoding of parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
