package config

import "github.com/uzzu/kotlin-dsl/internal/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Schema == "" {
		return errors.WithHint(errors.New("schema is required"),
			"pass --schema or set KOTLIN_DSL_SCHEMA")
	}

	if c.BinaryDir == "" {
		return errors.New("binary_dir cannot be empty")
	}

	if c.ModuleName == "" {
		return errors.New("module_name cannot be empty")
	}

	if c.Workers < 1 {
		return errors.Newf("workers must be > 0, got %d", c.Workers)
	}

	// Zero leaves a single slot.
	if c.QueueSize < 0 {
		return errors.Newf("queue_size must be >= 0, got %d", c.QueueSize)
	}

	if _, err := c.MetadataVersionInts(); err != nil {
		return err
	}

	return nil
}
