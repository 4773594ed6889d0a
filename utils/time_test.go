package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToISOTimestamp(t *testing.T) {
	assert.Equal(t, "", ToISOTimestamp(0))
	assert.Equal(t, "2020-09-13T12:26:40.000Z", ToISOTimestamp(1_600_000_000_000))
	assert.Equal(t, "2020-09-13T12:26:40.123Z", ToISOTimestamp(1_600_000_000_123))
}

func TestNowMs(t *testing.T) {
	before := NowMs()
	after := NowMs()
	assert.True(t, before > 0)
	assert.True(t, after >= before)
}
