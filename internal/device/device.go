// Package device classifies a request's user agent into a coarse device class.
package device

import (
	"regexp"

	"linkhop/internal/models"
)

var (
	tabletRe = regexp.MustCompile(`(?i)tablet|ipad`)
	mobileRe = regexp.MustCompile(`(?i)mobile|android|iphone|ipad|ipod`)
)

// Classify returns DeviceTablet when ua looks like a tablet, DeviceMobile for other
// handhelds and DeviceDesktop otherwise. Tablet wins over mobile.
func Classify(ua string) models.Device {
	switch {
	case tabletRe.MatchString(ua):
		return models.DeviceTablet
	case mobileRe.MatchString(ua):
		return models.DeviceMobile
	default:
		return models.DeviceDesktop
	}
}
