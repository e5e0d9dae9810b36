package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "PORT=9090\nJWT_SECRET=s3cret\nJWT_ACCESS_TTL=2h\nEMAIL_DRIVER=smtp\nSMTP_HOST=mail.local\nDB_NAME=yamdb\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := loadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, "smtp", cfg.Email.Driver)
	assert.Equal(t, "mail.local", cfg.Email.Host)
	assert.Equal(t, "support@yamdb.ru", cfg.Email.From)
	assert.Equal(t, "yamdb", cfg.Database.Name)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PORT", "7070")

	cfg, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "7070", cfg.App.Port)
	assert.Equal(t, "log", cfg.Email.Driver)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
}
