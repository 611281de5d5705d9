package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
Env = "production"

[Database]
Driver = "mysql"
Host = "db"
Port = "3306"
Database = "raffle"
User = "root"

[Auth]
TokenSecret = "file-secret"
NonceExpiration = "2m"

[Auth.AccessToken]
Name = "token"
Expiration = "30m"

[Chain]
DefaultChainID = 1

[Chain.RPCOverrides]
"1" = "https://mainnet.example"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	t.Setenv("AUTH_TOKEN_SECRET", "env-secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, "env-secret", cfg.Auth.TokenSecret)
	require.Equal(t, 30*time.Minute, cfg.Auth.AccessToken.Expiration.Duration)
	require.Equal(t, 2*time.Minute, cfg.Auth.NonceExpiration.Duration)
	require.Equal(t, int64(1), cfg.Chain.DefaultChainID)
	require.Equal(t, "https://mainnet.example", cfg.Chain.RPCOverrides["1"])
	require.Equal(t, "root:@tcp(db:3306)/raffle?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.ConnectionString())

	// Values which are not in file keep the default.
	require.Equal(t, int64(100), cfg.Referral.DirectPoints)
	require.Equal(t, "8080", cfg.ApiServer.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "not-found.toml"))
	require.Error(t, err)
}

func TestPostgresConnectionString(t *testing.T) {
	d := DatabaseConfigs{Driver: "postgres", Host: "h", Port: "5432", Database: "db", User: "u", Password: "p"}
	require.Equal(t, "host=h port=5432 user=u password=p dbname=db sslmode=require", d.ConnectionString())
	require.Equal(t, "postgres://u:p@h:5432/db?sslmode=require", d.URL())
}
