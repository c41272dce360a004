// config предоставляет структуру конфигурации orastria
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
//
// Имена ENV-переменных сохранены от исходного деплоя
// (PROKERALA_*, B2_*, PORT).
type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	HTTP      HTTPConfig      `yaml:"http"`
	Prokerala ProkeralaConfig `yaml:"prokerala"`
	Geo       GeoConfig       `yaml:"geo"`
	S3        S3Config        `yaml:"s3"`
	Book      BookConfig      `yaml:"book"`
	Timeouts  TimeoutConfig   `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// ProkeralaConfig — доступ к астрологическому API (Prokerala).
type ProkeralaConfig struct {
	ClientID     string `yaml:"client_id" env:"PROKERALA_CLIENT_ID" env-required:"true"`
	ClientSecret string `yaml:"client_secret" env:"PROKERALA_CLIENT_SECRET" env-required:"true"`
	TokenURL     string `yaml:"token_url" env:"PROKERALA_TOKEN_URL" env-default:"https://api.prokerala.com/token"`
	BaseURL      string `yaml:"base_url" env:"PROKERALA_BASE_URL" env-default:"https://api.prokerala.com/v2/astrology"`
	// Ayanamsa — поправка системы отсчёта эфемерид; 1 = Lahiri.
	Ayanamsa int `yaml:"ayanamsa" env:"PROKERALA_AYANAMSA" env-default:"1"`
}

// GeoConfig — геокодинг (Nominatim) и определение таймзоны (timeapi.io).
type GeoConfig struct {
	SearchURL   string `yaml:"search_url" env:"GEO_SEARCH_URL" env-default:"https://nominatim.openstreetmap.org/search"`
	TimezoneURL string `yaml:"timezone_url" env:"GEO_TIMEZONE_URL" env-default:"https://timeapi.io/api/TimeZone/coordinate"`
	UserAgent   string `yaml:"user_agent" env:"GEO_USER_AGENT" env-default:"OrastriaApp/1.0"`
}

// S3Config — S3-совместимое хранилище сгенерированных книг (Backblaze B2).
type S3Config struct {
	KeyID    string `yaml:"key_id" env:"B2_KEY_ID" env-required:"true"`
	AppKey   string `yaml:"app_key" env:"B2_APP_KEY" env-required:"true"`
	Bucket   string `yaml:"bucket" env:"B2_BUCKET_NAME" env-default:"orastria-books"`
	Endpoint string `yaml:"endpoint" env:"B2_ENDPOINT" env-default:"https://s3.us-west-004.backblazeb2.com"`
	// PublicBaseURL — опциональная база публичных ссылок; если пусто,
	// ссылка собирается из Endpoint и Bucket.
	PublicBaseURL string `yaml:"public_base_url" env:"B2_PUBLIC_BASE_URL"`
}

// BookConfig — параметры генератора книги.
type BookConfig struct {
	// FontPaths — цепочка TTF-шрифтов с поддержкой Unicode; используется
	// первый существующий. Если ни один не найден, генератор откатывается
	// на встроенный Helvetica (без зодиакальных глифов).
	FontPaths []string `yaml:"font_paths" env:"BOOK_FONT_PATHS" env-separator:","`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	// Service — общий дедлайн HTTP-запроса (включает рендер и аплоад).
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"60s"`
	// Upstream — таймаут одного вызова внешнего API.
	Upstream time.Duration `yaml:"upstream" env:"UPSTREAM_TIMEOUT" env-default:"15s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.Prokerala.ClientID == "" || c.Prokerala.ClientSecret == "" {
		return fmt.Errorf("prokerala.client_id and prokerala.client_secret are required")
	}
	if c.S3.KeyID == "" || c.S3.AppKey == "" {
		return fmt.Errorf("s3.key_id and s3.app_key are required")
	}
	if c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required")
	}
	if c.S3.Endpoint == "" {
		return fmt.Errorf("s3.endpoint is required")
	}
	if c.Timeouts.Upstream <= 0 {
		return fmt.Errorf("timeouts.upstream must be > 0")
	}
	if c.Timeouts.Service < c.Timeouts.Upstream {
		return fmt.Errorf("timeouts.service must be >= timeouts.upstream")
	}
	return nil
}
