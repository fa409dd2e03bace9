package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "unemployment-year-reports"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultSCBURL, cfg.SCBURL)
	assert.Equal(t, 30*time.Second, cfg.SCBTimeout)
	assert.Equal(t, 10.0, cfg.SCBRateLimit)
	assert.Equal(t, 1, cfg.SCBRateBurst)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Empty(t, cfg.KafkaReportTopic)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("SCB_URL", "https://scb.example.test/table")
	t.Setenv("SCB_TIMEOUT", "5s")
	t.Setenv("SCB_RATE_LIMIT", "0.5")
	t.Setenv("SCB_RATE_BURST", "3")
	t.Setenv("OUTPUT_FORMAT", "yaml")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_REPORT_TOPIC", testTopic)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://scb.example.test/table", cfg.SCBURL)
	assert.Equal(t, 5*time.Second, cfg.SCBTimeout)
	assert.Equal(t, 0.5, cfg.SCBRateLimit)
	assert.Equal(t, 3, cfg.SCBRateBurst)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, testTopic, cfg.KafkaReportTopic)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidEnv(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"timeout not a duration", "SCB_TIMEOUT", "bad", "SCB_TIMEOUT"},
		{"timeout not positive", "SCB_TIMEOUT", "0s", "SCB_TIMEOUT"},
		{"rate limit not a number", "SCB_RATE_LIMIT", "fast", "SCB_RATE_LIMIT"},
		{"rate limit zero", "SCB_RATE_LIMIT", "0", "SCB_RATE_LIMIT"},
		{"rate burst zero", "SCB_RATE_BURST", "0", "SCB_RATE_BURST"},
		{"relative url", "SCB_URL", "/OV0104/v1", "SCB_URL"},
		{"unsupported scheme", "SCB_URL", "ftp://api.scb.se/table", "SCB_URL"},
		{"unknown output format", "OUTPUT_FORMAT", "csv", "OUTPUT_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_KafkaEnabledWithoutTopic(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "true")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_REPORT_TOPIC")
}

func TestLoad_KafkaTopicImpliesEnabled(t *testing.T) {
	t.Setenv("KAFKA_REPORT_TOPIC", testTopic)
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.KafkaEnabled)
}

func TestLoad_KafkaExplicitlyDisabled(t *testing.T) {
	t.Setenv("KAFKA_REPORT_TOPIC", testTopic)
	t.Setenv("KAFKA_ENABLED", "false")
	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.KafkaEnabled)
}
