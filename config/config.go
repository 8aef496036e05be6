package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderBedrock = "bedrock"
	ProviderVertex  = "vertex"
)

// Config is read once at startup and passed by value afterwards.
type Config struct {
	Host    string
	Port    string
	GinMode string

	LogLevel string
	LogFile  string

	Provider string

	// Bedrock
	AWSRegion       string
	ModelID         string
	BedrockEndpoint string // optional override, ex: a VPC endpoint

	// Vertex Gemini
	VertexProjectID string
	VertexLocation  string
	VertexModel     string
}

// Load reads the environment, optionally seeded from a .env file.
// MODEL_ID is not validated here; an empty value is rejected by the provider at call time.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Host:    getEnv("HOST", "0.0.0.0"),
		Port:    getEnv("PORT", "80"),
		GinMode: getEnv("GIN_MODE", "debug"),

		LogLevel: os.Getenv("LOG_LEVEL"),
		LogFile:  os.Getenv("LOG_FILE"),

		Provider: strings.ToLower(getEnv("LLM_PROVIDER", ProviderBedrock)),

		AWSRegion:       os.Getenv("AWS_REGION"),
		ModelID:         os.Getenv("MODEL_ID"),
		BedrockEndpoint: os.Getenv("BEDROCK_ENDPOINT"),

		VertexProjectID: os.Getenv("VERTEX_PROJECT_ID"),
		VertexLocation:  getEnv("VERTEX_LOCATION", "us-central1"),
		VertexModel:     getEnv("VERTEX_MODEL", "gemini-1.5-flash"),
	}
}

func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
