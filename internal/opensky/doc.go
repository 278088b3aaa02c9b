// Package opensky is a minimal client for the OpenSky Network all-states
// endpoint.
//
// # Wire Format
//
// The endpoint returns an object whose "states" field is a list of
// positional arrays. skyboard reads five positions (0-based):
//
//	1  callsign         string, often right-padded with spaces
//	2  origin_country   string
//	5  longitude        number, degrees
//	6  latitude         number, degrees
//	9  velocity         number, m/s over ground
//
// FlightRecord.UnmarshalJSON is the only place that knows these positions.
// Decoding is tolerant: nulls, wrong types, short arrays, and entries that are
// not arrays all decode as absent fields instead of errors.
//
// # Snapshots
//
// FetchStates keeps the first MaxFlights entries (default 50) in upstream
// order. A body without a states list (including "{}") is an empty
// snapshot, not an error.
//
// # Errors
//
// Failures are classified into three types, all matchable with errors.As:
//
//   - TransportError: no response was obtained (dial, TLS, timeout, context)
//   - StatusError: the status code was outside 200..299
//   - MalformedResponseError: the body was not valid JSON
//
// The client never retries; the caller's polling cadence is the retry policy.
//
// # Usage Example
//
//	client, err := opensky.NewClient("", opensky.WithMaxFlights(50))
//	if err != nil {
//		return err
//	}
//	snap, err := client.FetchStates(ctx)
package opensky
