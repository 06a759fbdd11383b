package services

import (
	"context"

	"gymdesk-backend/internal/models"
	"gymdesk-backend/internal/renewal"
	"gymdesk-backend/pkg/logger"

	"go.uber.org/zap"
)

// RenewMember archives the member's current plan and replaces it with in.
// The archive entry and the new plan are written by the same versioned
// update, so either both land or neither does.
func RenewMember(ctx context.Context, id uint, in renewal.Input, expectedVersion *int) (*models.Member, error) {
	now := Now()
	member, err := writeMember(ctx, id, expectedVersion, func(current models.Member) (models.Member, error) {
		return renewal.ApplyRenewal(current, in, now)
	}, true)
	if err != nil {
		return nil, err
	}

	logger.L().Info("Member plan renewed",
		zap.Uint("member_id", id),
		zap.Int("duration", member.Duration),
		zap.String("payment_mode", string(member.PaymentMode)),
		zap.Int("history_entries", len(member.PreviousPlan)))
	return member, nil
}
