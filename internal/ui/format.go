package ui

import (
	"fmt"
	"strings"

	"github.com/five82/skyboard/internal/opensky"
)

const (
	notAvailable    = "N/A"
	unknownCallsign = "Unknown"
	noFlightsText   = "No flights available"
	loadingText     = "Loading live flights..."
)

// flightCells renders one record as table cells in column order.
func flightCells(rec opensky.FlightRecord) [5]string {
	return [5]string{
		formatCallsign(rec.Callsign),
		formatCountry(rec.OriginCountry),
		formatDegrees(rec.Longitude),
		formatDegrees(rec.Latitude),
		formatVelocity(rec.Velocity),
	}
}

// formatCallsign trims upstream padding; blank or absent is Unknown.
func formatCallsign(v *string) string {
	if v == nil {
		return unknownCallsign
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		return trimmed
	}
	return unknownCallsign
}

func formatCountry(v *string) string {
	if v == nil || *v == "" {
		return notAvailable
	}
	return *v
}

// formatDegrees prints two decimals. Zero renders as N/A, same as absent.
func formatDegrees(v *float64) string {
	if v == nil || *v == 0 {
		return notAvailable
	}
	return fmt.Sprintf("%.2f", *v)
}

// formatVelocity prints m/s with two decimals. Zero renders as N/A.
func formatVelocity(v *float64) string {
	if v == nil || *v == 0 {
		return notAvailable
	}
	return fmt.Sprintf("%.2f m/s", *v)
}

// filterCountLine summarizes an active filter.
func filterCountLine(n int, filter string) string {
	return fmt.Sprintf("Showing %d flights filtered by: '%s'", n, filter)
}
