package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Server Server        `yaml:"server"`
	Mongo  Mongo         `yaml:"mongo"`
	Log    Log           `yaml:"log"`
	Cors   Cors          `yaml:"cors"`
	JwtTTL time.Duration `yaml:"jwt_ttl"`
	HSTS   bool          `yaml:"hsts"` // set when served behind TLS
}

type Server struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

type Mongo struct {
	Database       string        `yaml:"database"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	QueryTimeout   time.Duration `yaml:"query_timeout"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Cors struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Private struct {
	JwtKey   string `yaml:"jwt_key"`
	MongoURI string `yaml:"mongo_uri"`
}

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL
}

func (c *Config) MongoURI() string {
	return c.private.MongoURI
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

// NewForTesting builds a config without touching the filesystem.
func NewForTesting(public Public, private Private) *Config {
	cfg := &Config{public, private}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Public.Server.Addr == "" {
		c.Public.Server.Addr = ":5000"
	}
	if c.Public.JwtTTL == 0 {
		c.Public.JwtTTL = time.Hour
	}
	if c.Public.Mongo.ConnectTimeout == 0 {
		c.Public.Mongo.ConnectTimeout = 10 * time.Second
	}
	if c.Public.Mongo.QueryTimeout == 0 {
		c.Public.Mongo.QueryTimeout = 5 * time.Second
	}
	if c.Public.Mongo.Database == "" {
		c.Public.Mongo.Database = "washlava"
	}
}
