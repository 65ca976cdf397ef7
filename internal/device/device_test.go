package device

import (
	"testing"

	"linkhop/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want models.Device
	}{
		{"empty", "", models.DeviceDesktop},
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36", models.DeviceDesktop},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148", models.DeviceMobile},
		{"android phone", "Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari/537.36", models.DeviceMobile},
		{"ipad matches both", "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) Mobile/15E148", models.DeviceTablet},
		{"android tablet", "Mozilla/5.0 (Linux; Android 13; SM-X700) Tablet Safari", models.DeviceTablet},
		{"case insensitive", "SOMETHING IPOD", models.DeviceMobile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.ua))
		})
	}
}
