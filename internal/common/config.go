package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Extraction ExtractionConfig
	Pipeline   PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// ExtractionConfig holds extraction-service configuration. Confidence
// thresholds are on the service's 0-100 scale: below Low a field is
// discarded as unusable, below Medium it is flagged for reviewer attention.
type ExtractionConfig struct {
	LowConfidence    float64
	MediumConfidence float64
	MaxDocumentBytes int64
	RequestTimeout   time.Duration
}

// PipelineConfig holds per-record and batch budget configuration.
type PipelineConfig struct {
	RecordTimeout  time.Duration
	DeadlineMargin time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Extraction: ExtractionConfig{
			LowConfidence:    getEnvAsFloat64("EXTRACTION_LOW_CONFIDENCE", 50),
			MediumConfidence: getEnvAsFloat64("EXTRACTION_MEDIUM_CONFIDENCE", 70),
			MaxDocumentBytes: getEnvAsInt64("EXTRACTION_MAX_DOCUMENT_BYTES", 10*1024*1024),
			RequestTimeout:   getEnvAsDuration("EXTRACTION_REQUEST_TIMEOUT", 30*time.Second),
		},
		Pipeline: PipelineConfig{
			RecordTimeout:  getEnvAsDuration("RECORD_TIMEOUT", 60*time.Second),
			DeadlineMargin: getEnvAsDuration("BATCH_DEADLINE_MARGIN", 10*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrValidation)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrValidation)
	}
	if c.Extraction.LowConfidence < 0 || c.Extraction.MediumConfidence > 100 ||
		c.Extraction.LowConfidence > c.Extraction.MediumConfidence {
		return NewAppError("CONFIG_ERROR", "confidence thresholds must satisfy 0 <= low <= medium <= 100", ErrValidation)
	}
	if c.Pipeline.RecordTimeout <= 0 {
		return NewAppError("CONFIG_ERROR", "RECORD_TIMEOUT must be positive", ErrValidation)
	}
	return nil
}
