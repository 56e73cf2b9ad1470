package prefs

import "fmt"

// Sentinels used when a scope component is absent. They keep guest state and
// "no location selected" state apart from any real id.
const (
	GuestUser  = "guest"
	NoLocation = "none"
)

// Scope pins a preference record to a signed-in identity and a selected store
// location. Logging in, logging out or switching location moves callers to a
// different scope, so saved preferences never leak between them or collide.
//
// The scope stays structured everywhere in the API; it is rendered to a
// string only at the storage adapter, so read and write sites can not drift
// in how they build the key.
type Scope struct {
	Prefix     string
	UserID     string
	LocationID string
}

// ForUser builds a scope, substituting the sentinels for absent components.
func ForUser(prefix, userID, locationID string) Scope {
	if userID == "" {
		userID = GuestUser
	}
	if locationID == "" {
		locationID = NoLocation
	}
	return Scope{Prefix: prefix, UserID: userID, LocationID: locationID}
}

// Key renders the storage key. Only kv adapters should ever see this form.
func (s Scope) Key() string {
	return fmt.Sprintf("%s:%s:%s", s.Prefix, s.UserID, s.LocationID)
}
