package config

import "os"

// Config holds application configuration.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// DynamoDB persistence for completed support conversations.
	AWSRegion              string
	AWSAccessKeyID         string
	AWSSecretAccessKey     string
	DynamoEndpointOverride string
	ConversationsTable     string

	// Gemini fallback responder.
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		AWSRegion:              getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:         getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey:     getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoEndpointOverride: getEnv("DYNAMO_ENDPOINT_OVERRIDE", ""),
		ConversationsTable:     getEnv("CONVERSATIONS_TABLE", "support_conversations"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}
}

// HasPersistence reports whether DynamoDB credentials were provided. Absence
// is a recognized degraded mode, not an error.
func (c *Config) HasPersistence() bool {
	return c.AWSAccessKeyID != "" && c.AWSSecretAccessKey != ""
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
