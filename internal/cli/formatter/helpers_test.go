package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "8d", FormatDays(8))
	assert.Equal(t, "2.5d", FormatDays(2.5))
	assert.Equal(t, "0d", FormatDays(0))
}

func TestSignedDays(t *testing.T) {
	assert.Contains(t, SignedDays(4), "+4d")
	assert.Contains(t, SignedDays(-2.5), "-2.5d")
	assert.Contains(t, SignedDays(0), "±0d")
}

func TestTruncID(t *testing.T) {
	got := TruncID("0123456789abcdef")
	assert.Contains(t, got, "01234567")
	assert.NotContains(t, got, "89abcdef")
}

func TestUtilization(t *testing.T) {
	assert.Contains(t, Utilization(50), "50%")
	assert.Contains(t, Utilization(120), "120%")
}

func TestRenderProgressClamps(t *testing.T) {
	assert.Contains(t, RenderProgress(1.5, 10), "100%")
	assert.Contains(t, RenderProgress(-0.5, 10), "0%")
}
