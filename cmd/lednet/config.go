package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config mirrors the persistent flags for users who drive the same devices
// every day.  Flags given on the command line always win over the file.
type Config struct {
	Addresses []string `yaml:"addresses"`
	Timeout   Duration `yaml:"timeout"`
	LogLevel  string   `yaml:"log_level"`
}

// Duration wraps time.Duration so config values can be written as `2s`
type Duration struct {
	time.Duration
}

// UnmarshalYAML decodes a duration string
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var text string
	if err := value.Decode(&text); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(text)
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ``
	}
	return filepath.Join(home, `.config`, `lednet`, `config.yaml`)
}

// applyConfig folds the config file into any flags the user did not set on
// the command line.  A missing file at the default path is fine; a missing
// file named via --config is an error.
func applyConfig(c *cobra.Command) {
	path := flagConfig
	explicit := path != ``
	if !explicit {
		path = defaultConfigPath()
		if path == `` {
			return
		}
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return
		}
		logger.WithField(`config`, path).Fatalln(`Could not read config file`)
	}

	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		logger.WithFields(logrus.Fields{
			`config`: path,
			`error`:  err,
		}).Fatalln(`Could not parse config file`)
	}

	flags := c.Root().PersistentFlags()
	if len(cfg.Addresses) > 0 && !flags.Changed(`addr`) {
		flagAddrs = cfg.Addresses
	}
	if cfg.Timeout.Duration > 0 && !flags.Changed(`timeout`) {
		flagTimeout = cfg.Timeout.Duration
	}
	if cfg.LogLevel != `` && !flags.Changed(`log-level`) {
		flagLogLevel = cfg.LogLevel
	}
}
