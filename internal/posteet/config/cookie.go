package config

// CookieConfig содержит настройки cookie с токеном доступа.
// Имена переменных фиксированы контрактом с браузерным клиентом.
type CookieConfig struct {
	Name   string `yaml:"name" env:"ACCESS_COOKIE_NAME" env-default:"access_token"`
	Secure string `yaml:"secure" env:"COOKIE_SECURE" env-default:"0"`
	MaxAge int    `yaml:"max_age" env:"ACCESS_TOKEN_EXPIRES" env-default:"3600"`
}

// IsSecure возвращает true, если cookie должна выставляться только по HTTPS.
func (c *CookieConfig) IsSecure() bool {
	return c.Secure == "1"
}
