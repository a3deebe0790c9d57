package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: accounts
  log:
    level: debug
http:
  port: 5000
  timeouts:
    readTimeout: 3s
store:
  driver: memory
secretKey:
  token: from-file
token:
  ttl: 2h
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_TOKEN", "from-env")
	t.Setenv("HTTP_PORT", "6000")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "accounts", cfg.Env.ServiceName)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 6000, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, "from-env", cfg.SecretKey.Token)
	require.NotNil(t, cfg.Token)
	assert.Equal(t, 2*time.Hour, cfg.Token.TTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Mongo: &MongoConfig{URI: "mongodb://localhost:27017"}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StoreDriverMongo, cfg.Store.Driver)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 1000*time.Hour, cfg.Token.TTL)
	assert.Equal(t, "//www.gravatar.com/avatar", cfg.Avatar.BaseURL)
	assert.Equal(t, 200, cfg.Avatar.Size)
	assert.Equal(t, "pg", cfg.Avatar.Rating)
	assert.Equal(t, "mm", cfg.Avatar.Default)
	assert.Equal(t, "users", cfg.Mongo.Collection)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Store: StoreConfig{Driver: StoreDriverPostgres},
		Auth:  &AuthConfig{BcryptCost: 12},
		Token: &TokenConfig{TTL: time.Hour},
	}
	cfg.applyDefaults()

	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Hour, cfg.Token.TTL)
	assert.Nil(t, cfg.Mongo)
}
