package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPConfig struct {
	Address string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"5s"`
}

type Config struct {
	LogLevel   string `yaml:"log_level" env:"LOG_LEVEL" env-default:"DEBUG"`
	HTTPConfig `yaml:"http_server"`
	DBAddress  string `yaml:"db_address" env:"DB_ADDRESS" env-default:"postgres://localhost:5432/project_factory"`
	DBMaxConns int    `yaml:"db_max_conns" env:"DB_MAX_CONNS" env-default:"10"`
}

func MustLoad(configPath string) Config {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}
	return cfg
}
