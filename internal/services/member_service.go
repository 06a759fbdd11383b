package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gymdesk-backend/internal/database"
	"gymdesk-backend/internal/models"
	"gymdesk-backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListMembers returns every member ordered by serial number. The result is
// served from the Redis list cache when it is warm.
func ListMembers(ctx context.Context) ([]models.Member, error) {
	if members, ok := cachedMemberList(ctx); ok {
		return members, nil
	}
	gen, fill := cacheGeneration(ctx)

	var members []models.Member
	if err := database.DB.WithContext(ctx).Order("serial_number asc").Find(&members).Error; err != nil {
		return nil, translateDBError(err)
	}
	if members == nil {
		members = []models.Member{}
	}

	if fill {
		cacheMemberList(ctx, gen, members)
	}
	return members, nil
}

func GetMember(ctx context.Context, id uint) (models.Member, error) {
	if member, ok := cachedMember(ctx, id); ok {
		return member, nil
	}
	gen, fill := cacheGeneration(ctx)

	var member models.Member
	if err := database.DB.WithContext(ctx).First(&member, id).Error; err != nil {
		return models.Member{}, translateDBError(err)
	}

	if fill {
		cacheMember(ctx, gen, member)
	}
	return member, nil
}

// CreateMember validates the draft, draws the next serial number and inserts
// the record in one transaction. DOJ and planStarted default to now.
func CreateMember(ctx context.Context, draft models.Member) (*models.Member, error) {
	member := draft
	member.ID = 0
	member.SerialNumber = 0
	member.Version = 1
	member.PreviousPlan = []models.PlanRecord{}

	now := Now()
	if member.DOJ.IsZero() {
		member.DOJ = now
	}
	if member.PlanStarted == nil || member.PlanStarted.IsZero() {
		started := member.DOJ
		member.PlanStarted = &started
	}
	member.NormalizePayment()

	if err := models.ValidateMember(&member); err != nil {
		return nil, err
	}

	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		serial, err := nextSerialNumber(tx)
		if err != nil {
			return err
		}
		member.SerialNumber = serial
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, translateDBError(err)
	}

	invalidateMemberCache(ctx, member.ID)
	logger.L().Info("Member created",
		zap.Uint("member_id", member.ID),
		zap.Int64("serial_number", member.SerialNumber))
	return &member, nil
}

// MemberUpdate holds the editable fields of a member. Nil fields are left
// unchanged. DOJ, serialNumber and previousPlan are not editable.
type MemberUpdate struct {
	Name             *string
	Email            *string
	Gender           *models.Gender
	Age              *int
	Phone            *string
	Address          *string
	EmergencyContact *string
	Duration         *int
	PaymentMode      *models.PaymentMode
	UTR              *string
	ReceiverName     *string
	Amount           *string
	PlanStarted      *time.Time
	Verified         *bool

	// Version, when set, must match the stored version.
	Version *int
}

func (u MemberUpdate) apply(m *models.Member) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Email != nil {
		m.Email = *u.Email
	}
	if u.Gender != nil {
		m.Gender = *u.Gender
	}
	if u.Age != nil {
		m.Age = *u.Age
	}
	if u.Phone != nil {
		m.Phone = *u.Phone
	}
	if u.Address != nil {
		m.Address = *u.Address
	}
	if u.EmergencyContact != nil {
		m.EmergencyContact = *u.EmergencyContact
	}
	if u.Duration != nil {
		m.Duration = *u.Duration
	}
	if u.PaymentMode != nil {
		m.PaymentMode = *u.PaymentMode
	}
	if u.UTR != nil {
		m.UTR = *u.UTR
	}
	if u.ReceiverName != nil {
		m.ReceiverName = *u.ReceiverName
	}
	if u.Amount != nil {
		m.Amount = *u.Amount
	}
	if u.PlanStarted != nil {
		started := *u.PlanStarted
		m.PlanStarted = &started
	}
	if u.Verified != nil {
		m.Verified = *u.Verified
	}
}

// checkPaymentFields rejects a non-empty utr or receiverName sent for the
// other payment mode. Clearing either field is always allowed.
func (u MemberUpdate) checkPaymentFields(mode models.PaymentMode) error {
	if mode == models.PaymentModeCash && u.UTR != nil && strings.TrimSpace(*u.UTR) != "" {
		return models.NewValidationError("utr", "utr is only accepted for upi payments", "empty when paymentMode is cash")
	}
	if mode == models.PaymentModeUPI && u.ReceiverName != nil && strings.TrimSpace(*u.ReceiverName) != "" {
		return models.NewValidationError("receiverName", "receiverName is only accepted for cash payments", "empty when paymentMode is upi")
	}
	return nil
}

// UpdateMember merges the update into the stored record, re-validates it and
// writes it back guarded by the record version.
func UpdateMember(ctx context.Context, id uint, update MemberUpdate) (*models.Member, error) {
	return writeMember(ctx, id, update.Version, func(current models.Member) (models.Member, error) {
		merged := current
		update.apply(&merged)
		if err := update.checkPaymentFields(merged.PaymentMode); err != nil {
			return models.Member{}, err
		}
		merged.NormalizePayment()
		if err := models.ValidateMember(&merged); err != nil {
			return models.Member{}, err
		}
		return merged, nil
	}, false)
}

func DeleteMember(ctx context.Context, id uint) error {
	result := database.DB.WithContext(ctx).Delete(&models.Member{}, id)
	if result.Error != nil {
		return translateDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}

	invalidateMemberCache(ctx, id)
	logger.L().Info("Member deleted", zap.Uint("member_id", id))
	return nil
}

// writeMember loads the member, lets mutate build the replacement and stores
// it with a version-guarded update inside one transaction. withHistory also
// writes previousPlan.
func writeMember(ctx context.Context, id uint, expectedVersion *int, mutate func(models.Member) (models.Member, error), withHistory bool) (*models.Member, error) {
	var updated models.Member
	err := database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.Member
		if err := tx.First(&current, id).Error; err != nil {
			return err
		}
		if expectedVersion != nil && *expectedVersion != current.Version {
			return ErrOptimisticLock
		}

		next, err := mutate(current)
		if err != nil {
			return err
		}
		next.Version = current.Version + 1
		next.UpdatedAt = Now()

		columns := memberColumns(next)
		if withHistory {
			columns["previous_plan"] = next.PreviousPlan
		}

		result := tx.Model(&models.Member{}).
			Where("id = ? AND version = ?", id, current.Version).
			Updates(columns)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOptimisticLock
		}
		updated = next
		return nil
	})
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) || errors.Is(err, ErrOptimisticLock) {
			return nil, err
		}
		return nil, translateDBError(err)
	}

	invalidateMemberCache(ctx, id)
	return &updated, nil
}

// memberColumns lists the mutable columns of a member for a versioned update.
func memberColumns(m models.Member) map[string]interface{} {
	return map[string]interface{}{
		"name":              m.Name,
		"email":             m.Email,
		"gender":            m.Gender,
		"age":               m.Age,
		"phone":             m.Phone,
		"address":           m.Address,
		"emergency_contact": m.EmergencyContact,
		"duration":          m.Duration,
		"payment_mode":      m.PaymentMode,
		"utr":               m.UTR,
		"receiver_name":     m.ReceiverName,
		"amount":            m.Amount,
		"plan_started":      m.PlanStarted,
		"verified":          m.Verified,
		"version":           m.Version,
		"updated_at":        m.UpdatedAt,
	}
}
