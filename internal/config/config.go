// Package config holds runtime settings for the TaskFlow CLI, loaded
// in three stages: defaults, then an optional JSON file (-c/-config),
// then command-line flags. Later stages win.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - DataDir: documents root; the accounts file and local exports
//     live beneath it.
//   - DatabaseDSN: path of the local key-value SQLite database.
//   - Mail*: EmailJS-compatible service used for profile change
//     confirmations; leave MailServiceID empty to log instead of send.
//   - S3*: optional bucket for account export; leave S3Bucket empty to
//     export to a local file.
type Config struct {
	DataDir     string
	DatabaseDSN string

	MailEndpoint   string
	MailServiceID  string
	MailTemplateID string
	MailPublicKey  string
	MailTimeout    time.Duration

	S3BaseEndpoint string
	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.DatabaseDSN = "taskflow.db"
	c.MailTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
