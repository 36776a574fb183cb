package location

import "fmt"

// NotAvailable is stored when geolocation capture was denied, unsupported or
// timed out on the client. Location capture never blocks a punch.
const NotAvailable = "Location not available"

// Resolve formats a coordinate pair as the stored location string, falling
// back to the NotAvailable sentinel when either coordinate is missing.
func Resolve(latitude, longitude *float64) string {
	if latitude == nil || longitude == nil {
		return NotAvailable
	}
	return fmt.Sprintf("%.5f, %.5f", *latitude, *longitude)
}
