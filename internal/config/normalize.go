package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeScanner()
	c.normalizePublisher()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = ExpandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeScanner() {
	c.Scanner.CSVPath = strings.TrimSpace(c.Scanner.CSVPath)
	if c.Scanner.CSVPath == "" {
		c.Scanner.CSVPath = defaultCSVPath
	}
}

func (c *Config) normalizePublisher() {
	c.Publisher.Endpoint = strings.TrimSpace(c.Publisher.Endpoint)
	if c.Publisher.Endpoint == "" {
		c.Publisher.Endpoint = defaultEndpoint
	}
	c.Publisher.BearerToken = strings.TrimSpace(c.Publisher.BearerToken)
	if c.Publisher.BearerToken == "" {
		if value, ok := os.LookupEnv("HAIKUFIND_BEARER_TOKEN"); ok {
			c.Publisher.BearerToken = strings.TrimSpace(value)
		} else if value, ok := os.LookupEnv("X_BEARER_TOKEN"); ok {
			c.Publisher.BearerToken = strings.TrimSpace(value)
		}
	}
	if c.Publisher.RequestTimeout <= 0 {
		c.Publisher.RequestTimeout = defaultRequestTimeout
	}
	if !c.Publisher.DryRun {
		if value, ok := os.LookupEnv("HAIKUFIND_DRY_RUN"); ok {
			switch strings.ToLower(strings.TrimSpace(value)) {
			case "1", "true", "yes", "y":
				c.Publisher.DryRun = true
			}
		}
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
