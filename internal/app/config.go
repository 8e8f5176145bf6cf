package app

import (
	"github.com/sourcelane/rfq-backend/internal/platform/envutil"
)

type Config struct {
	HTTPAddr string
	LogMode  string
}

func LoadConfig() Config {
	return Config{
		HTTPAddr: envutil.Str("HTTP_ADDR", ":8080"),
		LogMode:  envutil.Str("LOG_MODE", "development"),
	}
}
