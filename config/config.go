package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env      string
	LogLevel string

	Database         DatabaseConfigs
	ApiServer        ServerConfigs
	PrometheusServer ServerConfigs
	Auth             AuthConfigs
	Redis            RedisConfigs
	Kafka            KafkaConfigs
	Referral         ReferralConfigs
	Chain            ChainConfigs
	Snowflake        SnowflakeConfigs
}

type DatabaseConfigs struct {
	Driver   string
	Host     string
	Port     string
	Database string
	User     string
	Password string
	SSLMode  string
}

func (d *DatabaseConfigs) ConnectionString() string {
	switch d.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User,
			d.Password,
			d.Host,
			d.Port,
			d.Database,
		)

	case "sqlite":
		return d.Database

	default:
		sslMode := d.SSLMode
		if sslMode == "" {
			sslMode = "require"
		}

		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			d.Host,
			d.Port,
			d.User,
			d.Password,
			d.Database,
			sslMode,
		)
	}
}

// URL returns the connection string in url form which is required by golang-migrate.
func (d *DatabaseConfigs) URL() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "require"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, sslMode)
}

type ServerConfigs struct {
	Host           string
	Port           string
	AllowedOrigins []string
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type AuthConfigs struct {
	TokenSecret     string
	AccessToken     TokenConfigs
	NonceExpiration Duration
}

type TokenConfigs struct {
	Name       string
	Expiration Duration
}

type RedisConfigs struct {
	Addr string
}

type KafkaConfigs struct {
	Addr        string
	ClientID    string
	RaffleTopic string
}

type ReferralConfigs struct {
	DirectPoints   int64
	IndirectPoints int64
}

type ChainConfigs struct {
	DefaultChainID int64

	// RPCOverrides replaces the compiled-in rpc of a network, keyed by chain id in decimal.
	RPCOverrides map[string]string

	// RaffleOverrides and TestTokenOverrides point a network to freshly deployed contracts.
	RaffleOverrides    map[string]string
	TestTokenOverrides map[string]string
}

type SnowflakeConfigs struct {
	NodeID int64
}

// Duration is a time.Duration which can be decoded from a toml string like "15m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func Default() Configs {
	return Configs{
		Env:      "local",
		LogLevel: "info",
		Database: DatabaseConfigs{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     "5432",
			Database: "postgres",
			User:     "postgres",
		},
		ApiServer:        ServerConfigs{Port: "8080", AllowedOrigins: []string{"*"}},
		PrometheusServer: ServerConfigs{Port: "9090"},
		Auth: AuthConfigs{
			AccessToken:     TokenConfigs{Name: "access_token", Expiration: Duration{time.Hour}},
			NonceExpiration: Duration{5 * time.Minute},
		},
		Redis:    RedisConfigs{Addr: "localhost:6379"},
		Kafka:    KafkaConfigs{ClientID: "raffle", RaffleTopic: "raffle.resolved"},
		Referral: ReferralConfigs{DirectPoints: 100, IndirectPoints: 25},
		Chain:    ChainConfigs{DefaultChainID: 11155111},
	}
}

// Load reads the toml file on top of the default configurations, then applies secrets from
// environment variables.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Configs{}, fmt.Errorf("cannot decode config file %s: %w", path, err)
		}
	}

	overrideFromEnv(&cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *Configs) {
	if v := os.Getenv("DATABASE_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if v := os.Getenv("AUTH_TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}

	if v := os.Getenv("KAFKA_ADDR"); v != "" {
		cfg.Kafka.Addr = v
	}
}
