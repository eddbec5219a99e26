package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL          string        `env:"REPORTR_API_URL" envDefault:"http://localhost:8000"`
	WSBaseURL           string        `env:"REPORTR_WS_URL" envDefault:"ws://localhost:8000/ws"`
	RequestTimeout      time.Duration `env:"REPORTR_REQUEST_TIMEOUT" envDefault:"30s"`
	SessionPath         string        `env:"REPORTR_SESSION_PATH"`
	PrefsPath           string        `env:"REPORTR_PREFS_PATH"`
	CloudinaryCloudName string        `env:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string        `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string        `env:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string        `env:"CLOUDINARY_FOLDER" envDefault:"reports"`
}

func New() *Config {
	if loadErr := godotenv.Load(".env"); loadErr != nil {
		log.Printf("[Env]: unable to load .env file %v", loadErr)
	}

	var cfg Config

	if parseErr := env.Parse(&cfg); parseErr != nil {
		log.Printf("[Env]: failed to parse environment variables: %v", parseErr)
	}

	return &cfg
}
