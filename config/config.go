package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Day planner specifics
	Planner PlannerConfig
	Store   StoreConfig
	RateLim RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PlannerConfig holds the allocation-engine knobs.
type PlannerConfig struct {
	Timezone string

	// CutoffSlot is the slot-number boundary of the morning block; heavy
	// placement below it is capped by MaxHeavyBeforeCutoff.
	CutoffSlot           int
	MaxHeavyBeforeCutoff int

	// Reveal gate: the special section stays hidden until the end of the
	// slot labeled RevealEndLabel minus RevealLeadMinutes.
	RevealEndLabel    string
	RevealLeadMinutes int

	// ExcludeFutureAssigned drops tasks already assigned to a later date
	// from today's backlog.
	ExcludeFutureAssigned bool

	// Result cache for rapid repeated plan requests.
	CacheSize       int
	CacheTTLMinutes int
}

type StoreConfig struct {
	SeedPath string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Planner engine
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.CutoffSlot = viper.GetInt("planner.cutoff_slot")
	cfg.Planner.MaxHeavyBeforeCutoff = viper.GetInt("planner.max_heavy_before_cutoff")
	cfg.Planner.RevealEndLabel = viper.GetString("planner.reveal_end_label")
	cfg.Planner.RevealLeadMinutes = viper.GetInt("planner.reveal_lead_minutes")
	cfg.Planner.ExcludeFutureAssigned = viper.GetBool("planner.exclude_future_assigned")
	cfg.Planner.CacheSize = viper.GetInt("planner.cache_size")
	cfg.Planner.CacheTTLMinutes = viper.GetInt("planner.cache_ttl_minutes")

	// Store & middleware
	cfg.Store.SeedPath = viper.GetString("store.seed_path")
	cfg.RateLim.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("planner.timezone", "UTC")
	viper.SetDefault("planner.cutoff_slot", 5)
	viper.SetDefault("planner.max_heavy_before_cutoff", 2)
	viper.SetDefault("planner.reveal_end_label", "Return Travel")
	viper.SetDefault("planner.reveal_lead_minutes", 10)
	viper.SetDefault("planner.exclude_future_assigned", false)
	viper.SetDefault("planner.cache_size", 128)
	viper.SetDefault("planner.cache_ttl_minutes", 5)

	viper.SetDefault("store.seed_path", "./config/seed.yaml")
	viper.SetDefault("rate_limit.requests_per_min", 120)
}
