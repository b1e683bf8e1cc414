// Package export writes stored classifications as JSON or YAML.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"galaxy-classify/internal/config"
	"galaxy-classify/internal/quickcode"
	"galaxy-classify/internal/store"
)

// Record is the exported shape of one classification.
type Record struct {
	GalaxyID       string         `json:"galaxy_id" yaml:"galaxy_id"`
	User           string         `json:"user" yaml:"user"`
	LSBClass       quickcode.Slot `json:"lsb_class" yaml:"lsb_class"`
	Morphology     quickcode.Slot `json:"morphology" yaml:"morphology"`
	AwesomeFlag    bool           `json:"awesome_flag" yaml:"awesome_flag"`
	ValidRedshift  bool           `json:"valid_redshift" yaml:"valid_redshift"`
	VisibleNucleus bool           `json:"visible_nucleus" yaml:"visible_nucleus"`
	FailedFitting  bool           `json:"failed_fitting" yaml:"failed_fitting"`
	Comments       string         `json:"comments" yaml:"comments"`
	TimeSpentMS    int64          `json:"time_spent_ms" yaml:"time_spent_ms"`
	Code           string         `json:"code" yaml:"code"`
	UpdatedAt      string         `json:"updated_at" yaml:"updated_at"`
}

// Records converts classifications, rendering each quick code under s.
func Records(cs []store.Classification, s config.Settings) []Record {
	out := make([]Record, 0, len(cs))
	for _, c := range cs {
		f := c.Flags
		out = append(out, Record{
			GalaxyID:       c.GalaxyID,
			User:           c.User,
			LSBClass:       f.LSB,
			Morphology:     f.Morphology,
			AwesomeFlag:    f.Awesome,
			ValidRedshift:  f.ValidRedshift,
			VisibleNucleus: f.VisibleNucleus,
			FailedFitting:  f.FailedFitting,
			Comments:       c.Comments,
			TimeSpentMS:    c.TimeSpent.Milliseconds(),
			Code:           quickcode.Encode(f, s.Mode, s.Visibility),
			UpdatedAt:      c.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

// Write encodes records to w in format ("json" or "yaml").
func Write(w io.Writer, records []Record, format string) error {
	if records == nil {
		records = []Record{}
	}
	switch strings.ToLower(format) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown export format %q (want json or yaml)", format)
	}
}
