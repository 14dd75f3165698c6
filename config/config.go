package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	DBPath          string
	DBMaxConns      int
	PredictEndpoint string
	PredictTimeout  int // seconds
	RemedyXLSX      string
	GuideDomains    string
	GuideMaxBytes   int
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				return n
			}
		}
		return def
	}
	cfg := AppConfig{
		Port:            get("PORT", "8080"),
		DBPath:          get("DB_PATH", "farm.db"),
		DBMaxConns:      getInt("DB_MAX_CONNS", 10),
		PredictEndpoint: get("PREDICT_ENDPOINT", "http://127.0.0.1:5000/predict"),
		PredictTimeout:  getInt("PREDICT_TIMEOUT_SECONDS", 30),
		RemedyXLSX:      get("REMEDY_XLSX", ""),
		GuideDomains:    get("GUIDE_ALLOWED_DOMAINS", ""),
		GuideMaxBytes:   getInt("GUIDE_MAX_BYTES_PER_PAGE", 1500000),
	}
	log.Printf("[cfg] %+v", cfg)
	return cfg
}
