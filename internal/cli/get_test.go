package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileSlug(t *testing.T) {
	assert.Equal(t, "/profile/sonu", profileSlug("sonu"))
	assert.Equal(t, "/profile/sonu", profileSlug("/profile/sonu"))
	assert.Equal(t, "/profile/sonu-2", profileSlug("sonu-2"))
}
