package services

import (
	"testing"
	"time"

	"gymdesk-backend/internal/database"
	"gymdesk-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testToday = time.Date(2024, time.April, 10, 9, 30, 0, 0, time.UTC)

// setupMemberDB points the services at a fresh in-memory database and a fixed
// clock, and disables Redis, mail and archive until a test installs them.
func setupMemberDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Migrator().DropTable(&models.Member{}, &models.Sequence{}, &models.User{}))
	require.NoError(t, db.AutoMigrate(&models.Member{}, &models.Sequence{}, &models.User{}))

	database.DB = db
	database.RedisClient = nil
	Now = func() time.Time { return testToday }
	SetMailer(nil)
	SetInvoiceArchiver(nil)

	t.Cleanup(func() {
		Now = time.Now
		database.RedisClient = nil
		SetMailer(nil)
		SetInvoiceArchiver(nil)
	})
}

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	database.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func upiDraft(name string) models.Member {
	return models.Member{
		Name:        name,
		Email:       "member@example.com",
		Gender:      models.GenderMale,
		Age:         30,
		Phone:       "9000000000",
		Duration:    3,
		PaymentMode: models.PaymentModeUPI,
		UTR:         "UTR123",
		Amount:      "3000",
		DOJ:         date(2024, time.January, 15),
	}
}

func ptr[T any](v T) *T {
	return &v
}
