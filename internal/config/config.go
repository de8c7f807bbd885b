// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	MigrationsPath          string `yaml:"migrations_path"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	SessionToken            `yaml:"session_token"`
	AIProvider              `yaml:"ai_provider"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// SessionToken структура для работы с сессионным jwt-токеном.
// TokenTTL задает время жизни токена и возраст cookie, по умолчанию 7 суток.
type SessionToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"168h"`
}

// AIProvider структура для настройки клиента внешнего AI-сервиса.
// Пустой APIKey означает, что функция подсказок отключена.
type AIProvider struct {
	APIKey    string        `yaml:"api_key"`
	Model     string        `yaml:"model" env-default:"o3-mini"`
	BaseURL   string        `yaml:"base_url" env-default:"https://api.openai.com/v1"`
	TimeoutAI time.Duration `yaml:"timeoutai" env-default:"30s"`
}

// MustLoad функция для загрузки конфига, путь к файлу берется из CONFIG_PATH.
// Отсутствие файла или секрета для подписи токенов — фатальная ошибка старта.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if cfg.JWTSecretKey == "" {
		log.Fatal("jwt_secret_key is not set")
	}
	return &cfg
}
