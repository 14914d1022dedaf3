package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePlacement(); err != nil {
		return err
	}
	if err := c.validateSummary(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePlacement() error {
	switch c.Placement.OnExisting {
	case OnExistingOverwrite, OnExistingRefuse:
		return nil
	default:
		return fmt.Errorf("placement.on_existing must be %q or %q, got %q", OnExistingOverwrite, OnExistingRefuse, c.Placement.OnExisting)
	}
}

func (c *Config) validateSummary() error {
	switch c.Summary.Format {
	case SummaryPlain, SummaryTable:
		return nil
	default:
		return fmt.Errorf("summary.format must be %q or %q, got %q", SummaryPlain, SummaryTable, c.Summary.Format)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
