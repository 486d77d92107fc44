package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_EnvOnly(t *testing.T) {
	t.Setenv("FSTR_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("FSTR_DB_HOST", "db.local")
	t.Setenv("FSTR_DB_PORT", "6432")
	t.Setenv("FSTR_DB_LOGIN", "fstr")
	t.Setenv("FSTR_DB_PASS", "p@ss word")
	t.Setenv("FSTR_DB_NAME", "pereval")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "fstr", cfg.Database.User)
	assert.Equal(t, "p@ss word", cfg.Database.Password)
	assert.Equal(t, "pereval", cfg.Database.Name)
	// дефолты
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Email.SMTPHost)
	assert.Empty(t, cfg.Telegram.Token)
	assert.Equal(t, 5*time.Second, cfg.Server.NotifyTimeout)
	assert.Equal(t, 10*time.Second, cfg.Telegram.Timeout)
}

func TestLoadConfig_NotifyTimeouts(t *testing.T) {
	t.Setenv("FSTR_CONFIG", writeYAML(t, `
server:
  notify_timeout: 2s
telegram:
  token: "123:abc"
  chat_id: 1
  timeout: 4s
`))
	t.Setenv("FSTR_DB_LOGIN", "u")
	t.Setenv("FSTR_DB_NAME", "db")
	t.Setenv("FSTR_TELEGRAM_TIMEOUT", "1500ms")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.Server.NotifyTimeout)
	assert.Equal(t, 1500*time.Millisecond, cfg.Telegram.Timeout)
}

func TestLoadConfig_YAMLThenEnv(t *testing.T) {
	path := writeYAML(t, `
server:
  port: 9090
  shutdown_timeout: 3s
database:
  host: yaml-host
  login: yaml-user
  name: yaml-db
  ping_timeout: 1s
log:
  level: debug
  format: console
telegram:
  token: "123:abc"
  chat_id: -1001
`)
	t.Setenv("FSTR_CONFIG", path)
	t.Setenv("FSTR_DB_HOST", "env-host")
	t.Setenv("FSTR_HTTP_PORT", "8081")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-host", cfg.Database.Host, "env wins over yaml")
	assert.Equal(t, "yaml-user", cfg.Database.User)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, time.Second, cfg.Database.PingTimeout)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout, "unset yaml keys keep defaults")
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, int64(-1001), cfg.Telegram.ChatID)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"missing db name": {"FSTR_DB_LOGIN": "u"},
		"bad log level":   {"FSTR_DB_LOGIN": "u", "FSTR_DB_NAME": "n", "FSTR_LOG_LEVEL": "verbose"},
		"bad sslmode":     {"FSTR_DB_LOGIN": "u", "FSTR_DB_NAME": "n", "FSTR_DB_SSLMODE": "maybe"},
		"smtp w/o from":   {"FSTR_DB_LOGIN": "u", "FSTR_DB_NAME": "n", "FSTR_SMTP_HOST": "smtp.local", "FSTR_SMTP_PORT": "25"},
		"tg w/o chat":     {"FSTR_DB_LOGIN": "u", "FSTR_DB_NAME": "n", "FSTR_TELEGRAM_TOKEN": "123:abc"},
	}
	for name, vars := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("FSTR_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
			for k, v := range vars {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_BrokenYAML(t *testing.T) {
	t.Setenv("FSTR_CONFIG", writeYAML(t, "server: [oops"))
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "parse")
}
