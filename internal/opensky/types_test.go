package opensky

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightRecord_UnmarshalPositions(t *testing.T) {
	var rec FlightRecord
	err := json.Unmarshal([]byte(`["abc","  DLH4 ","Germany",1,2,13.4,52.5,3000,false,0,null]`), &rec)
	require.NoError(t, err)

	require.NotNil(t, rec.Callsign)
	assert.Equal(t, "  DLH4 ", *rec.Callsign, "callsign is kept verbatim")
	require.NotNil(t, rec.Velocity)
	assert.Zero(t, *rec.Velocity, "zero is present, not absent")
	assert.InDelta(t, 13.4, *rec.Longitude, 1e-9)
	assert.InDelta(t, 52.5, *rec.Latitude, 1e-9)
}

func TestFlightRecord_UnmarshalNeverFails(t *testing.T) {
	for _, input := range []string{`{}`, `"x"`, `7`, `[]`, `[null,null,null,null,null,null,null,null,null,null]`} {
		var rec FlightRecord
		rec.Callsign = new(string)
		require.NoError(t, json.Unmarshal([]byte(input), &rec), input)
		assert.Equal(t, FlightRecord{}, rec, input)
	}
}

func TestSnapshot_UnmarshalList(t *testing.T) {
	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(`[[null,"A","X"],"junk",[null,"B","Y"]]`), &snap))
	require.Len(t, snap, 3)
	assert.Equal(t, "A", *snap[0].Callsign)
	assert.Equal(t, FlightRecord{}, snap[1])
	assert.Equal(t, "Y", *snap[2].OriginCountry)
}
