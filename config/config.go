package config

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // "mysql" or "sqlite"
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
	Path   string // sqlite file path
}

type Redis struct {
	Addr string // empty means in-memory session store
	DB   int
}

type Session struct {
	Secret     string
	Issuer     string
	CookieName string
	TTL        time.Duration
}

type Config struct {
	HTTP     HTTP
	DB       DB
	Redis    Redis
	Session  Session
	LogLevel string
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.http.host", "127.0.0.1")
	v.SetDefault("server.http.port", 5555)
	v.SetDefault("server.db.driver", "sqlite")
	v.SetDefault("server.db.host", "127.0.0.1")
	v.SetDefault("server.db.port", 3306)
	v.SetDefault("server.db.user", "root")
	v.SetDefault("server.db.pass", "")
	v.SetDefault("server.db.name", "recipe_shelf")
	v.SetDefault("server.db.path", "recipe_shelf.db")
	v.SetDefault("server.redis.addr", "")
	v.SetDefault("server.redis.db", 0)
	v.SetDefault("server.session.cookie_name", "recipe_shelf_session")
	v.SetDefault("server.session.ttl_min", 7*24*60)
	v.SetDefault("server.log_level", "info")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("server.http.host"), Port: v.GetInt("server.http.port")},
		DB: DB{
			Driver: v.GetString("server.db.driver"),
			Host:   v.GetString("server.db.host"),
			Port:   v.GetInt("server.db.port"),
			User:   v.GetString("server.db.user"),
			Pass:   v.GetString("server.db.pass"),
			Name:   v.GetString("server.db.name"),
			Path:   v.GetString("server.db.path"),
		},
		Redis:    Redis{Addr: v.GetString("server.redis.addr"), DB: v.GetInt("server.redis.db")},
		LogLevel: v.GetString("server.log_level"),
	}
	cfg.Session.Secret = v.GetString("server.session.secret")
	if cfg.Session.Secret == "" {
		cfg.Session.Secret = "dev-secret"
	}
	cfg.Session.Issuer = v.GetString("server.session.issuer")
	if cfg.Session.Issuer == "" {
		cfg.Session.Issuer = "recipe-shelf"
	}
	cfg.Session.CookieName = v.GetString("server.session.cookie_name")
	ttlMin := v.GetInt("server.session.ttl_min")
	if ttlMin <= 0 {
		ttlMin = 7 * 24 * 60
	}
	cfg.Session.TTL = time.Duration(ttlMin) * time.Minute
	return cfg
}

// Watch reloads the config file on change and invokes onChange with the
// fresh snapshot. Only hot-applicable settings (log level) are expected to
// take effect without a restart.
func Watch(path string, onChange func(*Config)) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	v.OnConfigChange(func(_ fsnotify.Event) {
		onChange(fromViper(v))
	})
	v.WatchConfig()
	return nil
}
