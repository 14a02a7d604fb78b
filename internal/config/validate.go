package config

import (
	"fmt"
	"strings"

	"github.com/6o6p/morphology"
)

// Validate checks the loaded configuration. Load calls it automatically;
// callers that override fields afterwards should call it again.
func (c *Config) Validate() error {
	if err := c.Dictionary.validate(); err != nil {
		return fmt.Errorf("dictionary: %w", err)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 0..65535 (got %d)", c.Server.Port)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}

func (d *DictionaryConfig) validate() error {
	if strings.TrimSpace(d.Path) == "" {
		return fmt.Errorf("path is required")
	}
	if _, err := morphology.ParseMatchPolicy(d.MatchPolicy); err != nil {
		return err
	}
	switch strings.ToLower(d.Ungrouped) {
	case "", "fail", "singleton":
	default:
		return fmt.Errorf("ungrouped must be fail or singleton (got %q)", d.Ungrouped)
	}
	return nil
}

// BuildOptions translates the dictionary settings into build options.
// It assumes Validate has passed.
func (d DictionaryConfig) BuildOptions() []morphology.BuildOption {
	policy, _ := morphology.ParseMatchPolicy(d.MatchPolicy)
	opts := []morphology.BuildOption{morphology.WithMatchPolicy(policy)}
	if strings.EqualFold(d.Ungrouped, "singleton") {
		opts = append(opts, morphology.WithUngroupedSingletons())
	}
	return opts
}
