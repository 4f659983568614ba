package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=0123456789abcdef0123\nHTTP_PORT=9090\nKAFKA_BROKERS=k1:9092,k2:9092\nREMINDER_AGE=2h\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	// cleanenv exports .env values into the process environment.
	t.Cleanup(func() {
		for _, k := range []string{"JWT_SECRET", "HTTP_PORT", "KAFKA_BROKERS", "REMINDER_AGE"} {
			_ = os.Unsetenv(k)
		}
	})

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 2*time.Hour, cfg.ReminderAge)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "grading-events", cfg.KafkaEventsTopic)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_FallsBackToEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret-long-enough")
	t.Setenv("S3_BUCKET", "uploads")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "uploads", cfg.S3Bucket)
	assert.Equal(t, 8080, cfg.HTTPPort)
}

func TestLoad_Validation(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}
