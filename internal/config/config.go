package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/studyplanner-backend/internal/logger"
	"github.com/yungbote/studyplanner-backend/internal/utils"
)

type ServerConfig struct {
	Port        string   `yaml:"port"`
	Mode        string   `yaml:"mode"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type PostgresConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type RedisConfig struct {
	Addr string `yaml:"addr"`
}

type AIConfig struct {
	BaseURL        string `yaml:"base_url"`
	ChatModel      string `yaml:"chat_model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type AuthConfig struct {
	JWTSecret       string `yaml:"jwt_secret"`
	AccessTokenTTL  int    `yaml:"access_token_ttl"`
	RefreshTokenTTL int    `yaml:"refresh_token_ttl"`
}

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Postgres PostgresConfig `yaml:"postgres"`
	Redis    RedisConfig    `yaml:"redis"`
	AI       AIConfig       `yaml:"ai"`
	Auth     AuthConfig     `yaml:"auth"`
}

// Load reads the optional yaml config file, then applies environment
// overrides so deployments can keep secrets out of the file.
func Load(path string, log *logger.Logger) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: "8080",
			Mode: "development",
		},
		AI: AIConfig{
			BaseURL:        "https://api.deepseek.com",
			ChatModel:      "deepseek-chat",
			TimeoutSeconds: 90,
		},
		Auth: AuthConfig{
			AccessTokenTTL:  3600,
			RefreshTokenTTL: 86400,
		},
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", path, err)
			}
			if log != nil {
				log.Info("Loaded config file", "path", path)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	cfg.Server.Port = utils.GetEnv("SERVER_PORT", cfg.Server.Port, log)
	cfg.Server.Mode = utils.GetEnv("LOG_MODE", cfg.Server.Mode, log)
	cfg.Postgres.Host = utils.GetEnv("POSTGRES_HOST", cfg.Postgres.Host, log)
	cfg.Postgres.Port = utils.GetEnv("POSTGRES_PORT", cfg.Postgres.Port, log)
	cfg.Postgres.User = utils.GetEnv("POSTGRES_USER", cfg.Postgres.User, log)
	cfg.Postgres.Password = utils.GetEnv("POSTGRES_PASSWORD", cfg.Postgres.Password, log)
	cfg.Postgres.Name = utils.GetEnv("POSTGRES_NAME", cfg.Postgres.Name, log)
	cfg.Redis.Addr = utils.GetEnv("REDIS_ADDR", cfg.Redis.Addr, log)
	cfg.AI.BaseURL = utils.GetEnv("AI_BASE_URL", cfg.AI.BaseURL, log)
	cfg.AI.ChatModel = utils.GetEnv("AI_CHAT_MODEL", cfg.AI.ChatModel, log)
	cfg.AI.TimeoutSeconds = utils.GetEnvAsInt("AI_TIMEOUT_SECONDS", cfg.AI.TimeoutSeconds, log)
	cfg.Auth.JWTSecret = utils.GetEnv("JWT_SECRET_KEY", cfg.Auth.JWTSecret, log)
	cfg.Auth.AccessTokenTTL = utils.GetEnvAsInt("ACCESS_TOKEN_TTL", cfg.Auth.AccessTokenTTL, log)
	cfg.Auth.RefreshTokenTTL = utils.GetEnvAsInt("REFRESH_TOKEN_TTL", cfg.Auth.RefreshTokenTTL, log)

	return cfg, nil
}
