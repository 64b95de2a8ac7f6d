package config

import "strings"

// CORSConfig содержит настройки CORS.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"*"`
}

// Origins возвращает список разрешенных источников.
func (c *CORSConfig) Origins() []string {
	origins := make([]string, 0)
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// AllowAll возвращает true, если разрешены любые источники.
func (c *CORSConfig) AllowAll() bool {
	for _, o := range c.Origins() {
		if o == "*" {
			return true
		}
	}
	return false
}
