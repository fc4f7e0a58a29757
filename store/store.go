// Package store is a flat namespace of named collections, each persisted
// as a single JSON value. Every write replaces the whole value; there is
// no delta or patch primitive. That matches the data scale of a small
// café and is not a scalable design.
package store

import "encoding/json"

// Collection keys. One flat namespace, no versioning field.
const (
	KeyCurrentUser     = "currentUser"
	KeyDrinks          = "drinks"
	KeyOrders          = "orders"
	KeyTimeLogs        = "timeLogs"
	KeyActivities      = "activities"
	KeyLoginActivities = "loginActivities"
)

// Keys lists every collection key, in the order backups dump them.
var Keys = []string{
	KeyCurrentUser,
	KeyDrinks,
	KeyOrders,
	KeyTimeLogs,
	KeyActivities,
	KeyLoginActivities,
}

// Store reads and writes whole JSON-encoded collections under named keys.
//
// Get reports found=false when the key is absent. A stored value that no
// longer parses as JSON for the target type is also reported as absent:
// corrupt storage degrades to "empty collection" / "no session", it never
// surfaces as an error.
type Store interface {
	Get(key string, out any) (found bool, err error)
	Set(key string, value any) error
	Delete(key string) error
	// Raw returns the stored bytes without decoding, for backups.
	Raw(key string) ([]byte, bool, error)
}

func decode(data []byte, out any) bool {
	return json.Unmarshal(data, out) == nil
}
