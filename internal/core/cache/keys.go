package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Namespace scopes cached entries by data type. Each namespace carries its
// own TTL policy.
type Namespace string

const (
	NamespaceDNS          Namespace = "dns"
	NamespaceRegistry     Namespace = "registry"
	NamespaceAvailability Namespace = "availability"
	NamespaceGeneration   Namespace = "generation"
	NamespaceQuality      Namespace = "quality"
)

// keyPrefix is the application namespace shared by every cache key.
const keyPrefix = "domainforge"

// digestLength is the number of hex characters kept from the identifier
// digest. Hashing bounds key length and keeps raw identifiers out of
// storage keys.
const digestLength = 16

// Namespaces lists every cache namespace.
func Namespaces() []Namespace {
	return []Namespace{
		NamespaceDNS,
		NamespaceRegistry,
		NamespaceAvailability,
		NamespaceGeneration,
		NamespaceQuality,
	}
}

// Key builds a namespaced cache key from a logical identifier. Identical
// identifiers always produce identical keys; distinct namespaces never
// collide for the same identifier.
func Key(ns Namespace, id string) string {
	sum := sha256.Sum256([]byte(id))
	return fmt.Sprintf("%s:%s:%s", keyPrefix, ns, hex.EncodeToString(sum[:])[:digestLength])
}

// TTLFor returns the time-to-live for entries in a namespace.
//
// Availability entries combine DNS and registry signals, so they expire as
// fast as the fastest-changing input. Quality scores are pure functions of
// their inputs and are kept for a day.
func TTLFor(ns Namespace) time.Duration {
	switch ns {
	case NamespaceDNS:
		return 5 * time.Minute
	case NamespaceRegistry:
		return 30 * time.Minute
	case NamespaceAvailability:
		return 5 * time.Minute
	case NamespaceGeneration:
		return time.Hour
	case NamespaceQuality:
		return 24 * time.Hour
	default:
		return 5 * time.Minute
	}
}
