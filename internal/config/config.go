package config

import (
	"errors"
	"net/url"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// DefaultSCBURL is the SCB table holding regional unemployment by year.
const DefaultSCBURL = "http://api.scb.se/OV0104/v1/doris/sv/ssd/START/ME/ME0104/ME0104D/ME0104T4"

// Config holds all service settings, populated from environment variables.
type Config struct {
	SCBURL       string
	SCBTimeout   time.Duration
	SCBRateLimit float64
	SCBRateBurst int

	OutputFormat    string
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Optional Kafka sink for year reports.
	KafkaEnabled     bool
	KafkaBrokers     []string
	KafkaReportTopic string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	scbTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("SCB_TIMEOUT", "30s"))
	if err != nil || scbTimeout <= 0 {
		return nil, errors.New("invalid SCB_TIMEOUT")
	}

	rateLimit, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("SCB_RATE_LIMIT", "10"), 64)
	if err != nil || rateLimit <= 0 {
		return nil, errors.New("invalid SCB_RATE_LIMIT: must be a positive number of requests per second")
	}

	rateBurst, err := strconv.Atoi(sharedcfg.EnvOrDefault("SCB_RATE_BURST", "1"))
	if err != nil || rateBurst < 1 {
		return nil, errors.New("invalid SCB_RATE_BURST: must be at least 1")
	}

	reportTopic := os.Getenv("KAFKA_REPORT_TOPIC")
	kafkaEnabled := reportTopic != ""
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		SCBURL:       sharedcfg.EnvOrDefault("SCB_URL", DefaultSCBURL),
		SCBTimeout:   scbTimeout,
		SCBRateLimit: rateLimit,
		SCBRateBurst: rateBurst,

		OutputFormat:    sharedcfg.EnvOrDefault("OUTPUT_FORMAT", "text"),
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaEnabled:     kafkaEnabled,
		KafkaBrokers:     sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaReportTopic: reportTopic,
	}

	if err := validateURL(cfg.SCBURL); err != nil {
		return nil, err
	}
	switch cfg.OutputFormat {
	case "text", "json", "yaml":
	default:
		return nil, errors.New("invalid OUTPUT_FORMAT: must be text, json or yaml")
	}
	if cfg.KafkaEnabled && cfg.KafkaReportTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_REPORT_TOPIC is not set")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required when the Kafka sink is enabled")
	}

	return cfg, nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("invalid SCB_URL: must be an absolute http(s) URL")
	}
	return nil
}
