package location

import (
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
)

// ErrUnavailable means no location source could produce a fix. Callers must
// fail the search rather than fall back to a default coordinate.
var ErrUnavailable = errors.New("no location source available")

// Provider supplies the reference coordinate for a proximity search.
type Provider interface {
	Locate() (lat, lng float64, err error)
}

// Fixed is a Provider pinned to a known coordinate, e.g. from CLI flags.
type Fixed struct {
	Lat float64
	Lng float64
}

func (f Fixed) Locate() (float64, float64, error) {
	return f.Lat, f.Lng, nil
}

// TermuxLocator reads the device position through the termux-location
// command, the location capability available on Android/Termux.
type TermuxLocator struct{}

func (TermuxLocator) Locate() (float64, float64, error) {
	path, err := exec.LookPath("termux-location")
	if err != nil {
		return 0, 0, ErrUnavailable
	}

	out, err := exec.Command(path, "-p", "network").Output()
	if err != nil {
		return 0, 0, fmt.Errorf("running termux-location: %w", ErrUnavailable)
	}

	var fix struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.Unmarshal(out, &fix); err != nil {
		return 0, 0, fmt.Errorf("parsing termux-location output: %w", ErrUnavailable)
	}
	return fix.Latitude, fix.Longitude, nil
}
