package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate ensures the configuration is usable. Publisher credentials are
// checked at publish time, not here, so scanning works without them.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validatePublisher(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validatePublisher() error {
	parsed, err := url.Parse(c.Publisher.Endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("publisher.endpoint is not a valid URL: %q", c.Publisher.Endpoint)
	}
	return nil
}
