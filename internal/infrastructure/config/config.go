package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultPort   = 8080
	defaultDBPath = "fabricmeasure.db"

	// Simulated processing delays for the placeholder capture backends.
	// They stand in for real completion signals and are tunable so tests
	// and local runs are not stuck waiting.
	defaultUploadProcessingDelayMS = 3000
	defaultARMeasureDelayMS        = 2000
)

type Config struct {
	Port   int    `yaml:"port"`
	DBPath string `yaml:"db_path"`

	UploadProcessingDelayMS int  `yaml:"upload_processing_delay_ms"`
	ARMeasureDelayMS        int  `yaml:"ar_measure_delay_ms"`
	CameraDisabled          bool `yaml:"camera_disabled"`
}

// Load reads config.yaml (or CONFIG_PATH) when present, applies environment
// overrides, and fills in defaults. A missing file is not an error: the
// defaults describe a fully working local setup.
func Load() Config {
	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("[config] loaded %s", configPath)
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("UPLOAD_PROCESSING_DELAY_MS"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			cfg.UploadProcessingDelayMS = d
		}
	}
	if v := os.Getenv("AR_MEASURE_DELAY_MS"); v != "" {
		if d, err := strconv.Atoi(v); err == nil {
			cfg.ARMeasureDelayMS = d
		}
	}
	if v := os.Getenv("CAMERA_DISABLED"); v != "" {
		cfg.CameraDisabled = isTruthy(v)
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}
	if cfg.UploadProcessingDelayMS == 0 {
		cfg.UploadProcessingDelayMS = defaultUploadProcessingDelayMS
	}
	if cfg.ARMeasureDelayMS == 0 {
		cfg.ARMeasureDelayMS = defaultARMeasureDelayMS
	}

	return cfg
}

func (c Config) UploadProcessingDelay() time.Duration {
	return time.Duration(c.UploadProcessingDelayMS) * time.Millisecond
}

func (c Config) ARMeasureDelay() time.Duration {
	return time.Duration(c.ARMeasureDelayMS) * time.Millisecond
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
