package opensky

import "encoding/json"

// State vector positions skyboard reads. The remaining positions (icao24,
// timestamps, altitudes, heading, squawk...) are ignored.
const (
	idxCallsign      = 1
	idxOriginCountry = 2
	idxLongitude     = 5
	idxLatitude      = 6
	idxVelocity      = 9
)

// FlightRecord is one aircraft state vector. Nil fields were absent, null,
// or of the wrong type upstream.
type FlightRecord struct {
	Callsign      *string
	OriginCountry *string
	Longitude     *float64 // degrees
	Latitude      *float64 // degrees
	Velocity      *float64 // m/s
}

// Snapshot is the ordered prefix of upstream states retrieved by one poll.
type Snapshot []FlightRecord

// UnmarshalJSON decodes a positional state vector. It never returns an
// error: an entry that is not an array decodes as a record with every field
// absent.
func (r *FlightRecord) UnmarshalJSON(data []byte) error {
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		*r = FlightRecord{}
		return nil
	}
	*r = FlightRecord{
		Callsign:      stringAt(fields, idxCallsign),
		OriginCountry: stringAt(fields, idxOriginCountry),
		Longitude:     numberAt(fields, idxLongitude),
		Latitude:      numberAt(fields, idxLatitude),
		Velocity:      numberAt(fields, idxVelocity),
	}
	return nil
}

func stringAt(fields []json.RawMessage, idx int) *string {
	if idx >= len(fields) {
		return nil
	}
	var v *string
	if err := json.Unmarshal(fields[idx], &v); err != nil {
		return nil
	}
	return v
}

func numberAt(fields []json.RawMessage, idx int) *float64 {
	if idx >= len(fields) {
		return nil
	}
	var v *float64
	if err := json.Unmarshal(fields[idx], &v); err != nil {
		return nil
	}
	return v
}
