// Package models defines shared data types
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// StopRecord is one entry of the stop directory. Coordinates are optional:
// some records in the remote directory have none, and the API has been seen
// returning them both as numbers and as quoted strings.
type StopRecord struct {
	Code      int    `json:"code"`
	Name      string `json:"name"`
	Latitude  *Coord `json:"latitude,omitempty"`
	Longitude *Coord `json:"longitude,omitempty"`
}

// HasCoordinates reports whether the record carries a usable position.
func (s StopRecord) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// UnmarshalJSON decodes a directory record, dropping coordinates that are
// missing or malformed instead of failing the record.
func (s *StopRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code      int             `json:"code"`
		Name      string          `json:"name"`
		Latitude  json.RawMessage `json:"latitude"`
		Longitude json.RawMessage `json:"longitude"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Code = raw.Code
	s.Name = raw.Name
	s.Latitude = decodeCoord(raw.Latitude)
	s.Longitude = decodeCoord(raw.Longitude)
	return nil
}

// Coord is a latitude or longitude in decimal degrees.
type Coord float64

func (c Coord) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(c))
}

// decodeCoord accepts a JSON number or a numeric string, nil otherwise.
func decodeCoord(raw json.RawMessage) *Coord {
	raw = bytes.Trim(raw, `"`)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return nil
	}
	c := Coord(f)
	return &c
}

// TripEntry is one scheduled departure for a stop. Ephemeral, never cached.
type TripEntry struct {
	TripTime  string `json:"tripTime"`
	RouteName string `json:"routeName"`
	LineCode  string `json:"lineCode"`
	StopName  string `json:"stopName"`
}

// LiveResponse is the live-vehicles payload for a stop.
type LiveResponse struct {
	Vehicles []LiveVehicle `json:"vehicles"`
}

// LiveVehicle is a live arrival estimate.
type LiveVehicle struct {
	DepartureMins Minutes `json:"departureMins"`
	RouteName     string  `json:"routeName"`
	LineCode      string  `json:"lineCode"`
}

// Minutes is a minute count that the live endpoint sometimes reports as an
// integer, sometimes as a digit string, and sometimes as "N/A". Unknown
// values stay tagged instead of leaking a sentinel string into callers.
type Minutes struct {
	Known bool
	Value int
}

func (m *Minutes) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	n, err := strconv.Atoi(string(data))
	if err != nil {
		*m = Minutes{}
		return nil
	}
	*m = Minutes{Known: true, Value: n}
	return nil
}

func (m Minutes) MarshalJSON() ([]byte, error) {
	if !m.Known {
		return json.Marshal("N/A")
	}
	return json.Marshal(m.Value)
}

// String renders the count for display, "N/A" when unknown.
func (m Minutes) String() string {
	if !m.Known {
		return "N/A"
	}
	return strconv.Itoa(m.Value)
}

// StopWithDistance is a StopRecord with distance from a reference point.
// Valid only for the search call that produced it.
type StopWithDistance struct {
	StopRecord
	DistanceMeters float64 `json:"distance_meters"`
}
