package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchParticipant(t *testing.T) {
	participants := []string{"Dodd", "Becca", "Logan", "Cindy"}

	got, ok := matchParticipant("dodd", participants)
	assert.True(t, ok)
	assert.Equal(t, "Dodd", got)

	got, ok = matchParticipant("Loga", participants)
	assert.True(t, ok)
	assert.Equal(t, "Logan", got)

	_, ok = matchParticipant("Zzyzx", participants)
	assert.False(t, ok)
}
