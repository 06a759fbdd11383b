package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 5, cfg.ExpiryThresholdDays)
	assert.Equal(t, "Dream Fitness", cfg.GymName)
	assert.Equal(t, "0 9 * * *", cfg.ReminderCron)
	assert.Equal(t, 12, cfg.JWTTTLHours)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "gym")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "gymdesk")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("EXPIRY_THRESHOLD_DAYS", "7")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("LOG_COMPRESS", "false")
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "host=db user=gym password=pw dbname=gymdesk port=6543 sslmode=disable", cfg.DSN())
	assert.Equal(t, 7, cfg.ExpiryThresholdDays)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.LogCompress)
	assert.Equal(t, 587, cfg.SMTPPort, "unparsable ints fall back to the default")
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mongodb")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "unsupported DB_DRIVER")
}

func TestFeatureToggles(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.RedisEnabled())
	assert.False(t, cfg.SMTPEnabled())
	assert.False(t, cfg.OSSEnabled())

	cfg.RedisAddr = "localhost"
	cfg.SMTPHost = "smtp.example.com"
	cfg.SMTPFrom = "desk@example.com"
	cfg.OSSEndpoint = "oss-cn-beijing.aliyuncs.com"
	cfg.OSSAccessKeyID = "id"
	cfg.OSSAccessKeySecret = "secret"
	cfg.OSSBucketName = "invoices"
	assert.True(t, cfg.RedisEnabled())
	assert.True(t, cfg.SMTPEnabled())
	assert.True(t, cfg.OSSEnabled())
	assert.Equal(t, "localhost:", cfg.RedisFullAddr())
}
