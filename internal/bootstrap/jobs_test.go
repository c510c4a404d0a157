package bootstrap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRefreshInterval(t *testing.T) {
	assert.Equal(t, 30*time.Second, refreshInterval(time.Minute))
	assert.Equal(t, minRefreshInterval, refreshInterval(500*time.Millisecond))
	assert.Equal(t, minRefreshInterval, refreshInterval(0))
}
