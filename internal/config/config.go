package config

import "os"

// Config holds the environment-driven runtime settings
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	HTTPPort      string
	JWTSecret     string
	ModUsername   string
	ModPassword   string
}

// Load reads configuration from the environment with local defaults
func Load() *Config {
	return &Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "reasonbridge"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		HTTPPort:      getEnv("HTTP_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		ModUsername:   getEnv("MOD_USERNAME", "admin"),
		ModPassword:   getEnv("MOD_PASSWORD", "password123"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
