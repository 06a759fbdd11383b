package models

import (
	"time"

	"gorm.io/datatypes"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type PaymentMode string

const (
	PaymentModeUPI  PaymentMode = "upi"
	PaymentModeCash PaymentMode = "cash"
)

// PlanRecord is one archived billing period. Records are appended on renewal
// and never edited afterwards.
type PlanRecord struct {
	Amount       string      `json:"amount"`
	UTR          string      `json:"utr,omitempty"`
	ReceiverName string      `json:"receiverName,omitempty"`
	PaymentMode  PaymentMode `json:"paymentMode"`
	Duration     int         `json:"duration"`
	PlanStarted  *time.Time  `json:"planStarted,omitempty"`
	ArchivedAt   time.Time   `json:"archivedAt"`
}

type Member struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
	SerialNumber int64     `gorm:"uniqueIndex;not null" json:"serialNumber"`

	Name             string `gorm:"type:varchar(100);not null;index" json:"name" validate:"required,max=100"`
	Email            string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
	Gender           Gender `gorm:"type:varchar(10);not null" json:"gender" validate:"required,oneof=male female other"`
	Age              int    `gorm:"not null" json:"age" validate:"min=1,max=120"`
	Phone            string `gorm:"type:varchar(20);not null" json:"phone" validate:"required,max=20"`
	Address          string `gorm:"type:text" json:"address"`
	EmergencyContact string `gorm:"type:varchar(100)" json:"emergencyContact"`

	// Current plan
	Duration     int         `gorm:"not null" json:"duration" validate:"min=1,max=12"`
	PaymentMode  PaymentMode `gorm:"type:varchar(10);not null" json:"paymentMode" validate:"required,oneof=upi cash"`
	UTR          string      `gorm:"column:utr;type:varchar(64)" json:"utr"`
	ReceiverName string      `gorm:"type:varchar(100)" json:"receiverName"`
	Amount       string      `gorm:"type:varchar(32);not null" json:"amount" validate:"required,amount"`
	DOJ          time.Time   `gorm:"column:doj;not null;index" json:"DOJ"`
	PlanStarted  *time.Time  `json:"planStarted"`
	Verified     bool        `gorm:"not null;default:false" json:"verified"`

	PreviousPlan datatypes.JSONSlice[PlanRecord] `json:"previousPlan"`
	Version      int                             `gorm:"not null;default:1" json:"version"`
}

// NormalizePayment clears the companion field that does not belong to the
// payment mode, so only one of UTR and ReceiverName is ever stored.
func (m *Member) NormalizePayment() {
	switch m.PaymentMode {
	case PaymentModeUPI:
		m.ReceiverName = ""
	case PaymentModeCash:
		m.UTR = ""
	}
}

// PaymentReference is the UTR for UPI payments and the receiver for cash.
func (m Member) PaymentReference() string {
	if m.PaymentMode == PaymentModeUPI {
		return m.UTR
	}
	return m.ReceiverName
}

// PlanStart is the start of the current plan, falling back to the joining
// date for members that never had planStarted recorded.
func (m Member) PlanStart() time.Time {
	if m.PlanStarted != nil && !m.PlanStarted.IsZero() {
		return *m.PlanStarted
	}
	return m.DOJ
}

// CurrentPlan snapshots the plan fields for archiving.
func (m Member) CurrentPlan(archivedAt time.Time) PlanRecord {
	var started *time.Time
	if m.PlanStarted != nil {
		s := *m.PlanStarted
		started = &s
	}
	return PlanRecord{
		Amount:       m.Amount,
		UTR:          m.UTR,
		ReceiverName: m.ReceiverName,
		PaymentMode:  m.PaymentMode,
		Duration:     m.Duration,
		PlanStarted:  started,
		ArchivedAt:   archivedAt,
	}
}
