package config

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env         string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer  HTTPServer `yaml:"http_server"`
	DB          DB         `yaml:"db"`
	Cache       Cache      `yaml:"cache"`
	Catalog     Catalog    `yaml:"catalog"`
	CORSOrigins string     `yaml:"cors_origins" env:"CORS_ORIGINS" env-default:"http://localhost:3000"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type DB struct {
	Addr     string `yaml:"addr" env:"DB_ADDR" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DB       string `yaml:"db" env:"DB_NAME" env-default:"catalog"`
}

type Cache struct {
	Addr          string        `yaml:"addr" env:"CACHE_ADDR" env-default:"localhost:6379"`
	Password      string        `yaml:"password" env:"CACHE_PASSWORD"`
	DB            int           `yaml:"db" env:"CACHE_DB" env-default:"0"`
	KeyPrefix     string        `yaml:"key_prefix" env:"CACHE_KEY_PREFIX"`
	CollectionTTL time.Duration `yaml:"collection_ttl" env:"CACHE_COLLECTION_TTL" env-default:"10m"`
}

type Catalog struct {
	DefaultPerPage int `yaml:"default_per_page" env:"CATALOG_DEFAULT_PER_PAGE" env-default:"10"`
	MaxPerPage     int `yaml:"max_per_page" env:"CATALOG_MAX_PER_PAGE" env-default:"100"`
}

// Origins splits the comma separated CORS origin list.
func (c *Config) Origins() []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// MustLoad reads the YAML file named by -config or CONFIG_PATH. Without a
// file the configuration comes from the environment alone. A .env file in
// the working directory is applied first if present.
func MustLoad() *Config {
	_ = godotenv.Load()

	path := fetchConfigPath()

	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
