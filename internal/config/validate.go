package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}
	if err := c.Playback.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("playback: %w", err))
	}
	if err := c.Controls.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("controls: %w", err))
	}
	if err := c.UI.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("ui: %w", err))
	}
	if c.Report.IntervalSeconds < 0 {
		errs = append(errs, errors.New("report: interval_seconds must be non-negative"))
	}

	return errors.Join(errs...)
}

// Validate checks ServerConfig for errors.
func (c *ServerConfig) Validate() error {
	if c.URL == "" {
		return nil
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url scheme: %q (must be http or https)", u.Scheme)
	}
	return nil
}

// Validate checks PlaybackConfig for errors.
func (c *PlaybackConfig) Validate() error {
	if c.Volume < 0 || c.Volume > 150 {
		return errors.New("volume must be between 0 and 150")
	}
	return nil
}

// Validate checks ControlsConfig for errors.
func (c *ControlsConfig) Validate() error {
	if c.ThrottleMS <= 0 {
		return errors.New("throttle_ms must be positive")
	}
	seen := make(map[int]bool)
	for _, s := range c.SkipSeconds {
		if s == 0 {
			return errors.New("skip_seconds must not contain 0")
		}
		if seen[s] {
			return fmt.Errorf("skip_seconds lists %d twice", s)
		}
		seen[s] = true
	}
	return nil
}

// Validate checks UIConfig for errors.
func (c *UIConfig) Validate() error {
	switch c.Theme {
	case "", "dark", "purple", "white":
		// valid
	default:
		return fmt.Errorf("invalid theme: %s (must be dark, purple, or white)", c.Theme)
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.New("width and height must be non-negative")
	}
	return nil
}
