// Package config holds the application settings record. Settings are passed
// explicitly to collaborators, never read from ambient state.
package config

import "github.com/pkg/errors"

// ErrParameterRange is returned by Validate when a sorting parameter falls
// outside its documented domain.
var ErrParameterRange = errors.New("parameter out of range")

// Settings describes the application defaults and limits.
type Settings struct {
	// DefaultThreshold is the initial run-boundary sensitivity.
	DefaultThreshold float32
	// DefaultInterval is the initial traversal sampling stride.
	DefaultInterval int

	// Threshold domain accepted from the user.
	MinThreshold, MaxThreshold float32
	// Interval domain accepted from the user.
	MinInterval, MaxInterval int

	// MaxImageWidth and MaxImageHeight bound decoded images; larger inputs
	// are downscaled on load to keep memory predictable.
	MaxImageWidth  int
	MaxImageHeight int

	// SampleDir is where demo images are generated.
	SampleDir string
}

// Default returns the kiosk defaults.
func Default() Settings {
	return Settings{
		DefaultThreshold: 50,
		DefaultInterval:  10,
		MinThreshold:     0,
		MaxThreshold:     255,
		MinInterval:      1,
		MaxInterval:      50,
		MaxImageWidth:    1920,
		MaxImageHeight:   1080,
		SampleDir:        "sample_images",
	}
}

// Validate strictly checks user-supplied sorting parameters against the
// configured domains. The engine itself clamps; this is the caller-side
// check that turns a typo into an error instead of a silent adjustment.
func (s Settings) Validate(threshold float32, interval int) error {
	if threshold < s.MinThreshold || threshold > s.MaxThreshold {
		return errors.Wrapf(ErrParameterRange, "threshold %g not in [%g, %g]",
			threshold, s.MinThreshold, s.MaxThreshold)
	}
	if interval < s.MinInterval || interval > s.MaxInterval {
		return errors.Wrapf(ErrParameterRange, "interval %d not in [%d, %d]",
			interval, s.MinInterval, s.MaxInterval)
	}
	return nil
}
