package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	DB    DBConfig
	Redis RedisConfig
}

type AppConfig struct {
	Port     string
	Env      string
	SeedData bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	StatsTTL time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Missing .env is fine when everything comes from the environment.
	_ = viper.ReadInConfig()

	statsTTL, err := time.ParseDuration(viper.GetString("DASHBOARD_STATS_TTL"))
	if err != nil {
		statsTTL = 30 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			SeedData: viper.GetBool("SEED_DATA"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
			StatsTTL: statsTTL,
		},
	}

	if config.App.Port == "" {
		config.App.Port = "8080"
	}

	return config, nil
}
