package config

import (
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnv = sync.OnceFunc(func() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}
})

// Config reads a key from .env or the process environment.
func Config(key string) string {
	loadEnv()
	return os.Getenv(key)
}

// ConfigOr reads a key and falls back to def when unset.
func ConfigOr(key, def string) string {
	if v := Config(key); v != "" {
		return v
	}
	return def
}
