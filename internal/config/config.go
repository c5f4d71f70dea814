package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Storage backends
const (
	StorageRedis = "redis"
	StorageLocal = "local"
)

// Config holds all runtime configuration, sourced from the environment. A
// .env file is applied by main before Load runs.
type Config struct {
	// Mode qualifies the persistence key (dev vs prd dataset)
	Mode string

	// Storage selects the blob backend: redis or local
	Storage string

	RedisAddr     string
	RedisPassword string

	// DataDir is where the local backend writes blobs
	DataDir string

	DiscordToken  string
	ApplicationID string

	// DevGuildID scopes command registration to one server during development
	DevGuildID string

	// Timezone is the IANA zone guild schedules are interpreted in
	Timezone string

	// FortRosterURL is the external fort roster feed endpoint
	FortRosterURL string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("MODE", "dev")
	v.SetDefault("STORAGE", StorageLocal)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("DATA_DIR", ".")
	v.SetDefault("TIMEZONE", "Asia/Singapore")

	cfg := &Config{
		Mode:          v.GetString("MODE"),
		Storage:       v.GetString("STORAGE"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		DataDir:       v.GetString("DATA_DIR"),
		DiscordToken:  v.GetString("DISCORD_TOKEN"),
		ApplicationID: v.GetString("APPLICATION_ID"),
		DevGuildID:    v.GetString("DEV_GUILD_ID"),
		Timezone:      v.GetString("TIMEZONE"),
		FortRosterURL: v.GetString("FORT_ROSTER_URL"),
	}

	if cfg.Storage != StorageRedis && cfg.Storage != StorageLocal {
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}

	return cfg, nil
}

// RegistryKey returns the persistence key for the guild registry blob,
// qualified by deployment mode.
func (c *Config) RegistryKey() string {
	return fmt.Sprintf("guilds.%s.json", c.Mode)
}
