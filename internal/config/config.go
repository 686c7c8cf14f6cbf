package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Playback PlaybackConfig `toml:"playback"`
	Controls ControlsConfig `toml:"controls"`
	UI       UIConfig       `toml:"ui"`
	Report   ReportConfig   `toml:"report"`
	Keybinds KeybindConfig  `toml:"keybinds"`
}

type ServerConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
	UserID   string `toml:"user_id"`
}

type PlaybackConfig struct {
	Volume      int    `toml:"volume"`
	AudioOutput string `toml:"audio_output"`
	StartPaused bool   `toml:"start_paused"`
}

type ControlsConfig struct {
	// ThrottleMS limits how often seek drags update the bar.
	ThrottleMS  int   `toml:"throttle_ms"`
	SkipSeconds []int `toml:"skip_seconds"`
	// Pointer enables drag-to-seek. When false only play/pause is wired.
	Pointer bool `toml:"pointer"`
	// MediaKeys listens for hardware play/pause and seek keys (Linux evdev).
	MediaKeys bool `toml:"media_keys"`
}

type UIConfig struct {
	Fullscreen bool   `toml:"fullscreen"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Theme      string `toml:"theme"`
}

type ReportConfig struct {
	IntervalSeconds int `toml:"interval_seconds"`
}

type KeybindConfig struct {
	PlayPause    string `toml:"play_pause"`
	SeekForward  string `toml:"seek_forward"`
	SeekBackward string `toml:"seek_backward"`
	VolumeUp     string `toml:"volume_up"`
	VolumeDown   string `toml:"volume_down"`
	Quit         string `toml:"quit"`
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{},
		Playback: PlaybackConfig{
			Volume: 100,
		},
		Controls: ControlsConfig{
			ThrottleMS:  25,
			SkipSeconds: []int{-30, -10, -5, 5, 10, 30},
			Pointer:     true,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      640,
			Height:     240,
			Theme:      "dark",
		},
		Report: ReportConfig{
			IntervalSeconds: 10,
		},
		Keybinds: KeybindConfig{
			PlayPause:    "Space",
			SeekForward:  "Right",
			SeekBackward: "Left",
			VolumeUp:     "Up",
			VolumeDown:   "Down",
			Quit:         "Q",
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "scrubbar"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from ConfigPath, a .env file in the working
// directory and SCRUBBAR_* environment variables, in increasing priority.
// A missing config file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		_ = godotenv.Load()
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	// Server
	if v := os.Getenv("SCRUBBAR_SERVER_URL"); v != "" {
		cfg.Server.URL = v
	}
	if v := os.Getenv("SCRUBBAR_SERVER_USERNAME"); v != "" {
		cfg.Server.Username = v
	}
	if v := os.Getenv("SCRUBBAR_SERVER_TOKEN"); v != "" {
		cfg.Server.Token = v
	}
	if v := os.Getenv("SCRUBBAR_SERVER_USER_ID"); v != "" {
		cfg.Server.UserID = v
	}

	// Playback
	if v := os.Getenv("SCRUBBAR_VOLUME"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Playback.Volume = i
		}
	}
	if v := os.Getenv("SCRUBBAR_AUDIO_OUTPUT"); v != "" {
		cfg.Playback.AudioOutput = v
	}

	// Controls
	if v := os.Getenv("SCRUBBAR_THROTTLE_MS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Controls.ThrottleMS = i
		}
	}
	if v := os.Getenv("SCRUBBAR_SKIP_SECONDS"); v != "" {
		if skips, err := parseSkips(v); err == nil {
			cfg.Controls.SkipSeconds = skips
		}
	}

	// UI
	if v := os.Getenv("SCRUBBAR_THEME"); v != "" {
		cfg.UI.Theme = v
	}
}

// parseSkips reads a comma separated list such as "-10,10".
func parseSkips(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("skip seconds %q: %w", f, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// Save writes the config to ConfigPath.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating parent directories.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
