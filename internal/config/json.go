package config

import (
	"encoding/json"
	"os"

	"github.com/taskflow-app/taskflow/internal/flagx"
	"github.com/taskflow-app/taskflow/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It
// relies on timex.Duration so intervals can be written either as
// strings like "10s" or as integer nanoseconds.
type JsonConfig struct {
	DataDir     string `json:"data_dir"`
	DatabaseDSN string `json:"database_dsn"`

	MailEndpoint   string         `json:"mail_endpoint"`
	MailServiceID  string         `json:"mail_service_id"`
	MailTemplateID string         `json:"mail_template_id"`
	MailPublicKey  string         `json:"mail_public_key"`
	MailTimeout    timex.Duration `json:"mail_timeout"`

	S3BaseEndpoint string `json:"s3_base_endpoint"`
	S3Region       string `json:"s3_region"`
	S3Bucket       string `json:"s3_bucket"`
	S3AccessKey    string `json:"s3_access_key"`
	S3SecretKey    string `json:"s3_secret_key"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent file path means nothing to do; read or
// unmarshal failures panic (caller may recover). Only fields present
// with non-zero values override earlier stages.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.MailEndpoint != "" {
		cfg.MailEndpoint = jc.MailEndpoint
	}
	if jc.MailServiceID != "" {
		cfg.MailServiceID = jc.MailServiceID
	}
	if jc.MailTemplateID != "" {
		cfg.MailTemplateID = jc.MailTemplateID
	}
	if jc.MailPublicKey != "" {
		cfg.MailPublicKey = jc.MailPublicKey
	}
	if jc.MailTimeout.Duration > 0 {
		cfg.MailTimeout = jc.MailTimeout.Duration
	}
	if jc.S3BaseEndpoint != "" {
		cfg.S3BaseEndpoint = jc.S3BaseEndpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
}
