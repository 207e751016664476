package storage

// State slot keys. Each key stores one whole collection (or the current-user
// record) as a single value.
const (
	KeyCurrentUser   = "currentUser"
	KeyUsers         = "users"
	KeyServers       = "servers"
	KeyChannels      = "channels"
	KeyCategories    = "categories"
	KeyMessages      = "messages"
	KeyServerMembers = "serverMembers"
)

// KV is the durable-storage contract the store consumes: synchronous per-key
// get/set, tolerant of absent keys. Get reports whether the key was present;
// callers fall back to an empty default when it was not.
type KV interface {
	Get(key string, out any) (bool, error)
	Set(key string, v any) error
}
