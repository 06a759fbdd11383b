package services

import (
	"context"
	"fmt"
	"time"

	"gymdesk-backend/internal/renewal"
	"gymdesk-backend/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const reminderRunTimeout = 4 * time.Minute

// ReminderResult summarises one reminder run.
type ReminderResult struct {
	Scanned int `json:"scanned"`
	Due     int `json:"due"`
	Sent    int `json:"sent"`
	NoEmail int `json:"noEmail"`
	Failed  int `json:"failed"`
}

// RunExpiryReminders mails every member whose plan ends within the expiring
// threshold. Members without an address are counted and skipped.
func RunExpiryReminders(ctx context.Context) (ReminderResult, error) {
	var result ReminderResult

	mailer := currentMailer()
	if mailer == nil {
		return result, ErrMailerNotConfigured
	}

	members, err := ListMembers(ctx)
	if err != nil {
		return result, err
	}

	today := Now()
	s := CurrentSettings()
	for _, m := range members {
		result.Scanned++
		expiry := renewal.ValidUpto(m)
		if !renewal.IsExpiringSoon(expiry, today, s.ExpiryThresholdDays) {
			continue
		}
		result.Due++
		if m.Email == "" {
			result.NoEmail++
			continue
		}

		days := renewal.DaysRemaining(expiry, today)
		err := mailer.Send(ctx, Email{
			To:      []string{m.Email},
			Subject: fmt.Sprintf("Your %s membership expires on %s", s.GymName, expiry.Format(pdfDate)),
			Body: fmt.Sprintf("Hello %s,\n\nYour %s plan ends on %s (%s left). Visit the front desk to renew.\n\nRegards,\n%s\n",
				m.Name, formatMonths(m.Duration), expiry.Format(pdfDate), formatDays(days), s.GymName),
		})
		if err != nil {
			result.Failed++
			logger.L().Warn("Expiry reminder failed", zap.Uint("member_id", m.ID), zap.Error(err))
			continue
		}
		result.Sent++
	}
	return result, nil
}

func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// StartReminderScheduler runs RunExpiryReminders on schedule. A run is skipped
// while the previous one is still going. The caller stops the returned cron.
func StartReminderScheduler(schedule string) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), reminderRunTimeout)
		defer cancel()

		result, err := RunExpiryReminders(ctx)
		if err != nil {
			logger.L().Error("Expiry reminder run failed", zap.Error(err))
			return
		}
		logger.L().Info("Expiry reminder run finished",
			zap.Int("scanned", result.Scanned),
			zap.Int("due", result.Due),
			zap.Int("sent", result.Sent),
			zap.Int("no_email", result.NoEmail),
			zap.Int("failed", result.Failed))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}

	c.Start()
	logger.L().Info("Expiry reminder scheduler started", zap.String("schedule", schedule))
	return c, nil
}
