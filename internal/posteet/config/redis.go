package config

import (
	"fmt"
	"time"
)

// RedisConfig содержит настройки хранилища заметок.
type RedisConfig struct {
	Host     string        `yaml:"host" env:"POSTEET_REDIS_HOST" env-default:"localhost"`
	Port     int           `yaml:"port" env:"POSTEET_REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"POSTEET_REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"POSTEET_REDIS_DB" env-default:"0"`
	PoolSize int           `yaml:"pool_size" env:"POSTEET_REDIS_POOL_SIZE" env-default:"10"`
	Timeout  time.Duration `yaml:"timeout" env:"POSTEET_REDIS_TIMEOUT" env-default:"5s"`
}

// GetAddress возвращает адрес Redis.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
