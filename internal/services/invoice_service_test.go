package services

import (
	"bytes"
	"testing"
	"time"

	"gymdesk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoicePDF(t *testing.T) {
	tests := []struct {
		name   string
		member models.Member
	}{
		{"upi", upiDraft("Asha")},
		{"cash with address", models.Member{
			SerialNumber: 9, Name: "Zoë Dsouza", Address: "12 MG Road\nPune", Phone: "900",
			Duration: 1, PaymentMode: models.PaymentModeCash, ReceiverName: "Raj", Amount: "999.5",
			DOJ: date(2024, time.January, 31),
		}},
		{"unparsable amount still renders", models.Member{Name: "X", Duration: 2, Amount: "n/a", DOJ: date(2024, time.March, 1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := GenerateInvoicePDF(tt.member, testToday)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
		})
	}
}

func TestGenerateRegistrationPDF(t *testing.T) {
	data, err := GenerateRegistrationPDF(upiDraft("Asha"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
	assert.Greater(t, len(data), 500)
}

func TestInvoiceFilename(t *testing.T) {
	assert.Equal(t, "invoice-12.pdf", InvoiceFilename(models.Member{SerialNumber: 12}))
}
