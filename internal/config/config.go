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
	MigrationsPath          string `yaml:"migrations_path" env-default:"./migrations"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	RabbitMQ                `yaml:"rabbitmq"`
	SMTP                    `yaml:"smtp"`
	Scheduler               `yaml:"scheduler"`
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

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// RabbitMQ структура для настройки подключения к брокеру уведомлений
type RabbitMQ struct {
	RabbitMQURL        string        `yaml:"rabbitmq_url"`
	RabbitMQMaxRetries int           `yaml:"rabbitmq_max_retries" env-default:"5"`
	RabbitMQRetryDelay time.Duration `yaml:"rabbitmq_retry_delay" env-default:"3s"`
}

// SMTP структура для настройки отправки почты
type SMTP struct {
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort int    `yaml:"smtp_port"`
	SMTPUser string `yaml:"smtp_user"`
	SMTPPass string `yaml:"smtp_pass"`
}

// Scheduler структура для настройки периодичности поиска истекающих абонементов
type Scheduler struct {
	ScanInterval time.Duration `yaml:"scan_interval" env-default:"12h"`
}

// MustLoad функция для загрузки конфига из файла, указанного в CONFIG_PATH.
// При любой ошибке завершает процесс.
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
	return &cfg
}
