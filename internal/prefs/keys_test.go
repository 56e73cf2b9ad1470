package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForUserSubstitutesSentinels(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		locationID string
		want       string
	}{
		{"anonymous browsing", "", "", "favorites:guest:none"},
		{"signed in, no location", "user-42", "", "favorites:user-42:none"},
		{"guest at a location", "", "loc-1", "favorites:guest:loc-1"},
		{"signed in at a location", "user-42", "loc-1", "favorites:user-42:loc-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := ForUser("favorites", tt.userID, tt.locationID)
			assert.Equal(t, tt.want, scope.Key())
		})
	}
}

func TestScopesAreDistinct(t *testing.T) {
	guest := FavoritesScope("", "loc-1")
	user := FavoritesScope("user-42", "loc-1")
	otherLocation := FavoritesScope("user-42", "loc-2")

	assert.NotEqual(t, guest.Key(), user.Key())
	assert.NotEqual(t, user.Key(), otherLocation.Key())
	assert.NotEqual(t, FavoritesScope("user-42", "loc-1").Key(), CategoryOrderScope("user-42", "loc-1").Key())
}
