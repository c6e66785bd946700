package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jazahq/jaza-backend/internal/pkg/models"
)

func validTestConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "secret"
	cfg.JWT.Algorithm = "HS256"
	cfg.Database.Host = "localhost"
	cfg.Database.Username = "jaza"
	cfg.Database.Database = "jaza"
	return cfg
}

func TestValidate_Success(t *testing.T) {
	assert.NoError(t, Validate(validTestConfig()))
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := validTestConfig()
	cfg.JWT.Secret = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate_MissingDatabase(t *testing.T) {
	cfg := validTestConfig()
	cfg.Database.Host = ""
	cfg.Database.Database = ""

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "DB_DATABASE")
}

func TestValidate_UnsupportedAlgorithm(t *testing.T) {
	cfg := validTestConfig()
	cfg.JWT.Algorithm = "RS256"

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported JWT algorithm")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("TEST_CONFIG_KEY", "value")
	assert.Equal(t, "value", GetEnv("TEST_CONFIG_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("TEST_CONFIG_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_CONFIG_INT", "42")
	t.Setenv("TEST_CONFIG_BAD_INT", "not-a-number")

	assert.Equal(t, 42, GetEnvAsInt("TEST_CONFIG_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_CONFIG_BAD_INT", 7))
	assert.Equal(t, 7, GetEnvAsInt("TEST_CONFIG_INT_MISSING", 7))
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_CONFIG_SLICE", "http://a.example.com, http://b.example.com")

	values := GetEnvAsSlice("TEST_CONFIG_SLICE", nil)
	assert.Equal(t, []string{"http://a.example.com", "http://b.example.com"}, values)

	fallback := GetEnvAsSlice("TEST_CONFIG_SLICE_MISSING", []string{"*"})
	assert.Equal(t, []string{"*"}, fallback)
}
