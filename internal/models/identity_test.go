package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityKey(t *testing.T) {
	base := Identity{ExternalID: "id1", Handle: "handle1"}
	alt := Identity{ExternalID: "id1", Handle: "handle1", Label: "Alt"}

	assert.NotEqual(t, base.Key(), alt.Key())
	assert.Equal(t, alt.Key(), Identity{ExternalID: "id1", Handle: "renamed", Label: "alt"}.Key())
	assert.True(t, alt.Equal(Identity{ExternalID: "id1", Label: "ALT"}))
	assert.False(t, base.Equal(Identity{ExternalID: "id2"}))
}

func TestIdentityDisplayName(t *testing.T) {
	assert.Equal(t, "handle1", Identity{ExternalID: "id1", Handle: "handle1"}.DisplayName())
	assert.Equal(t, "handle1 alt", Identity{ExternalID: "id1", Handle: "handle1", Label: "alt"}.DisplayName())
}
