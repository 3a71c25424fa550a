package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, falling back to system environment variables")
	}
}

// Config is the bot's process configuration, read once at startup.
type Config struct {
	// DiscordToken is the gateway secret. Without it the process must not
	// attempt to connect; New returns an error and main exits.
	DiscordToken string `env:"DISCORD_TOKEN,required"`
	// HealthAddr is where the liveness HTTP server listens.
	HealthAddr string `env:"HEALTH_ADDR" envDefault:":8080"`
	// KeepaliveURL, when set, is pinged every ten minutes so the hosting
	// platform does not idle the process.
	KeepaliveURL string `env:"KEEPALIVE_URL"`
	// InitSlashCommands controls whether slash commands are synced with
	// Discord on ready. Disable to skip the registration round-trips.
	InitSlashCommands bool `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
}

// New parses the configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
