package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExporter_WritesAndReportsPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	e := NewFileExporter(dir)

	location, err := e.Export(context.Background(), "accounts.json", []byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "accounts.json"), location)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))
}

func TestFileExporter_OverwritesExisting(t *testing.T) {
	e := NewFileExporter(t.TempDir())
	ctx := context.Background()

	_, err := e.Export(ctx, "a.json", []byte(`["old"]`))
	require.NoError(t, err)
	location, err := e.Export(ctx, "a.json", []byte(`["new"]`))
	require.NoError(t, err)

	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, `["new"]`, string(data))
}

func TestStorageKey_DatePrefixedPath(t *testing.T) {
	d := time.Now()
	want := fmt.Sprintf("exports/%d/%d/%d/accounts.json", d.Year(), d.Month(), d.Day())
	assert.Equal(t, want, storageKey("accounts.json"))
}

func TestS3Exporter_ClientUsesBaseEndpoint(t *testing.T) {
	origNew := newS3ClientFromConfig
	defer func() { newS3ClientFromConfig = origNew }()

	var captured s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&captured)
		}
		return s3.NewFromConfig(cfg, optFns...)
	}

	e := NewS3Exporter(S3Config{
		BaseEndpoint: "http://localhost:9000",
		Region:       "us-east-1",
		Bucket:       "exports",
		AccessKey:    "minio",
		SecretKey:    "minio123",
	})

	_, err := e.getClient(context.Background())
	require.NoError(t, err)
	require.NotNil(t, captured.BaseEndpoint)
	assert.Equal(t, "http://localhost:9000", *captured.BaseEndpoint)
}
