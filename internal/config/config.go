package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yigit/roadmap/internal/planner"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		// ShutdownTimeout bounds the drain of in-flight requests.
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		// TrustedProxies is passed to gin; empty trusts no proxy.
		TrustedProxies []string `yaml:"trusted_proxies" env:"SERVER_TRUSTED_PROXIES"`
	} `yaml:"server"`

	Database struct {
		Driver          string `yaml:"driver" env:"DB_DRIVER"`
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
		Seed            bool   `yaml:"seed" env:"DB_SEED"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Planner struct {
		MaxUnitsPerQuarter      int     `yaml:"max_units_per_quarter" env:"PLANNER_MAX_UNITS"`
		MaxDifficultyPerQuarter int     `yaml:"max_difficulty_per_quarter" env:"PLANNER_MAX_DIFFICULTY"`
		MaxCoursesPerQuarter    int     `yaml:"max_courses_per_quarter" env:"PLANNER_MAX_COURSES"`
		CeilingMargin           int     `yaml:"ceiling_margin" env:"PLANNER_CEILING_MARGIN"`
		HeavyRatio              float64 `yaml:"heavy_ratio" env:"PLANNER_HEAVY_RATIO"`
		Weights                 struct {
			Criticality float64 `yaml:"criticality" env:"PLANNER_WEIGHT_CRITICALITY"`
			LoadBalance float64 `yaml:"load_balance" env:"PLANNER_WEIGHT_LOAD_BALANCE"`
			Urgency     float64 `yaml:"urgency" env:"PLANNER_WEIGHT_URGENCY"`
		} `yaml:"weights"`
	} `yaml:"planner"`

	Transcript struct {
		MaxTextBytes int `yaml:"max_text_bytes" env:"TRANSCRIPT_MAX_TEXT_BYTES"`
	} `yaml:"transcript"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// A missing file is fine, defaults and env still apply
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.ShutdownTimeout = "10s"

	// Database defaults
	config.Database.Driver = "postgres"
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "roadmap"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"
	config.Database.Seed = true

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Planner defaults
	def := planner.DefaultOptions()
	config.Planner.MaxUnitsPerQuarter = def.Limits.MaxUnits
	config.Planner.MaxDifficultyPerQuarter = def.Limits.MaxDifficulty
	config.Planner.MaxCoursesPerQuarter = def.Limits.MaxCourses
	config.Planner.CeilingMargin = def.CeilingMargin
	config.Planner.HeavyRatio = def.HeavyRatio
	config.Planner.Weights.Criticality = def.Weights.Criticality
	config.Planner.Weights.LoadBalance = def.Weights.LoadBalance
	config.Planner.Weights.Urgency = def.Weights.Urgency

	config.Transcript.MaxTextBytes = 1 << 20
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Driver == "" {
		return fmt.Errorf("database driver is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection lifetime: %w", err)
	}

	for name, value := range map[string]string{
		"read": config.Server.ReadTimeout, "write": config.Server.WriteTimeout,
		"shutdown": config.Server.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid server %s timeout: %w", name, err)
		}
	}

	p := config.Planner
	if p.MaxUnitsPerQuarter <= 0 || p.MaxDifficultyPerQuarter <= 0 || p.MaxCoursesPerQuarter <= 0 {
		return fmt.Errorf("planner limits must be positive")
	}
	if p.CeilingMargin < 0 {
		return fmt.Errorf("planner ceiling margin must not be negative")
	}
	if p.HeavyRatio <= 0 || p.HeavyRatio > 1 {
		return fmt.Errorf("planner heavy ratio must be in (0, 1], got %v", p.HeavyRatio)
	}

	if config.Transcript.MaxTextBytes <= 0 {
		return fmt.Errorf("transcript max text bytes must be positive")
	}

	return nil
}

// PlannerOptions converts the planner section into core planner options.
func (c *Config) PlannerOptions() planner.Options {
	p := c.Planner
	return planner.Options{
		Limits: planner.Limits{
			MaxUnits:      p.MaxUnitsPerQuarter,
			MaxDifficulty: p.MaxDifficultyPerQuarter,
			MaxCourses:    p.MaxCoursesPerQuarter,
		},
		Weights: planner.Weights{
			Criticality: p.Weights.Criticality,
			LoadBalance: p.Weights.LoadBalance,
			Urgency:     p.Weights.Urgency,
		},
		CeilingMargin: p.CeilingMargin,
		HeavyRatio:    p.HeavyRatio,
	}
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
