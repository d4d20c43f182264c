package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ble-sentry.klederson.com/internal/tracker"
)

func TestFallbackNameFromCompanyID(t *testing.T) {
	addr, ok := tracker.ParseAddr("AA:BB:CC:DD:EE:FF")
	assert.True(t, ok)

	assert.Equal(t, "Apple EE:FF", fallbackName(0x004C, addr))
	assert.Equal(t, "Samsung EE:FF", fallbackName(0x0075, addr))
}

func TestFallbackNameUnknownCompany(t *testing.T) {
	addr, _ := tracker.ParseAddr("AA:BB:CC:DD:EE:FF")
	assert.Empty(t, fallbackName(0xFFFF, addr))
}

func TestLookupManufacturer(t *testing.T) {
	assert.Equal(t, "Apple", LookupManufacturer(0x004C))
	assert.Empty(t, LookupManufacturer(0xFFFE))
}
