package discovery

import "strings"

// ParseCityState pulls city and state out of a "street, city, ST ZIP, country" address.
// Addresses with fewer than three comma separated parts return the fallbacks unchanged.
//
// This only understands the US shape; anything irregular silently falls back to the
// searched location.
func ParseCityState(formattedAddress, fallbackCity, fallbackState string) (string, string) {
	parts := strings.Split(formattedAddress, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) < 3 {
		return fallbackCity, fallbackState
	}

	city := parts[len(parts)-3]
	state := ""
	if fields := strings.Fields(parts[len(parts)-2]); len(fields) > 0 {
		state = fields[0]
	}
	return city, state
}
