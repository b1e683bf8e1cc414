// Package config loads galaxy-classify settings from TOML or JSON.
//
// The file format is chosen by extension (.json is JSON, anything else is
// TOML). A missing file yields Default().
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"galaxy-classify/internal/quickcode"
)

const DefaultPath = "galaxy-classify.toml"

// Config is the whole on-disk configuration.
type Config struct {
	User      string `toml:"user" json:"user"`
	DataDir   string `toml:"data_dir" json:"data_dir"`
	Database  string `toml:"database" json:"database,omitempty"`   // default <data_dir>/classify.db
	LogFile   string `toml:"log_file" json:"log_file,omitempty"`   // default <data_dir>/classify.log
	Verbosity int    `toml:"verbosity" json:"verbosity,omitempty"` // 0 warn, 1 info, 2 debug

	Classification Classification `toml:"classification" json:"classification"`
}

// Classification holds the settings the classification form reads once per
// screen.
type Classification struct {
	FailedFittingMode  string `toml:"failed_fitting_mode" json:"failed_fitting_mode"`
	ShowAwesomeFlag    bool   `toml:"show_awesome_flag" json:"show_awesome_flag"`
	ShowValidRedshift  bool   `toml:"show_valid_redshift" json:"show_valid_redshift"`
	ShowVisibleNucleus bool   `toml:"show_visible_nucleus" json:"show_visible_nucleus"`
	ContrastGroups     int    `toml:"contrast_groups" json:"contrast_groups"`
}

// Settings is the parsed form of Classification passed to the codec.
type Settings struct {
	Mode       quickcode.Mode
	Visibility quickcode.Visibility
}

// Default returns the built-in configuration.
func Default() *Config {
	user := os.Getenv("USER")
	if user == "" {
		user = "classifier"
	}
	return &Config{
		User:    user,
		DataDir: ".galaxy-classify",
		Classification: Classification{
			FailedFittingMode:  "checkbox",
			ShowAwesomeFlag:    true,
			ShowValidRedshift:  true,
			ShowVisibleNucleus: true,
			ContrastGroups:     3,
		},
	}
}

// Load reads path over Default(), applies env overrides and validates.
func Load(path string) (*Config, error) {
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	c.ApplyEnvOverrides()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads path over Default() without environment overrides, for
// callers that write the file back.
func LoadFile(path string) (*Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	case isJSON(path):
		if err := json.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config JSON: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), c); err != nil {
			return nil, fmt.Errorf("parse config TOML: %w", err)
		}
	}
	return c, nil
}

// Save writes c to path in the format implied by its extension.
func Save(path string, c *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	if isJSON(path) {
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config TOML: %w", err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// DatabasePath resolves the database location.
func (c *Config) DatabasePath() string {
	if c.Database != "" {
		return c.Database
	}
	return filepath.Join(c.DataDir, "classify.db")
}

// LogPath resolves the log file location.
func (c *Config) LogPath() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(c.DataDir, "classify.log")
}

// Settings returns the codec settings. Call after Validate.
func (c *Config) Settings() Settings {
	mode, _ := quickcode.ParseMode(c.Classification.FailedFittingMode)
	return Settings{
		Mode: mode,
		Visibility: quickcode.Visibility{
			ShowAwesomeFlag:    c.Classification.ShowAwesomeFlag,
			ShowValidRedshift:  c.Classification.ShowValidRedshift,
			ShowVisibleNucleus: c.Classification.ShowVisibleNucleus,
		},
	}
}

// ApplyEnvOverrides lets the environment replace a few fields.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GALAXY_CLASSIFY_USER"); v != "" {
		c.User = v
	}
	if v := os.Getenv("GALAXY_CLASSIFY_MODE"); v != "" {
		c.Classification.FailedFittingMode = v
	}
	if v := os.Getenv("GALAXY_CLASSIFY_DATA_DIR"); v != "" {
		c.DataDir = v
	}
}

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every invalid field.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "invalid config: " + strings.Join(msgs, "; ")
}

// Validate checks field values. It returns ValidationErrors or nil.
func (c *Config) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(c.User) == "" {
		errs = append(errs, ValidationError{"user", "must not be empty"})
	}
	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, ValidationError{"data_dir", "must not be empty"})
	}
	if _, err := quickcode.ParseMode(c.Classification.FailedFittingMode); err != nil {
		errs = append(errs, ValidationError{"classification.failed_fitting_mode", err.Error()})
	}
	if c.Classification.ContrastGroups < 1 {
		errs = append(errs, ValidationError{"classification.contrast_groups", "must be at least 1"})
	}
	if c.Verbosity < 0 || c.Verbosity > 2 {
		errs = append(errs, ValidationError{"verbosity", "must be 0, 1 or 2"})
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Keys lists the settings accepted by Set.
var Keys = []string{
	"user",
	"failed_fitting_mode",
	"show_awesome_flag",
	"show_valid_redshift",
	"show_visible_nucleus",
	"contrast_groups",
}

// Set assigns one setting from its text form and revalidates.
func (c *Config) Set(key, value string) error {
	cl := &c.Classification
	var err error
	switch key {
	case "user":
		c.User = value
	case "failed_fitting_mode":
		cl.FailedFittingMode = strings.ToLower(strings.TrimSpace(value))
	case "show_awesome_flag":
		cl.ShowAwesomeFlag, err = strconv.ParseBool(value)
	case "show_valid_redshift":
		cl.ShowValidRedshift, err = strconv.ParseBool(value)
	case "show_visible_nucleus":
		cl.ShowVisibleNucleus, err = strconv.ParseBool(value)
	case "contrast_groups":
		cl.ContrastGroups, err = strconv.Atoi(value)
	default:
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(Keys, ", "))
	}
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return c.Validate()
}
