package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	SecretKey       string `yaml:"secret_key" env:"POSTEET_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	AccessTokenTTL  string `yaml:"access_token_ttl" env:"POSTEET_JWT_ACCESS_TOKEN_TTL" env-default:"1h"`
	ServiceTokenTTL string `yaml:"service_token_ttl" env:"POSTEET_JWT_SERVICE_TOKEN_TTL" env-default:"1h"`
	BCryptCost      int    `yaml:"bcrypt_cost" env:"POSTEET_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL возвращает время жизни access токена.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return time.Hour
	}
	return duration
}

// GetServiceTokenTTL возвращает время жизни токенов сброса пароля и верификации.
func (c *JWTConfig) GetServiceTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.ServiceTokenTTL)
	if err != nil {
		return time.Hour
	}
	return duration
}
