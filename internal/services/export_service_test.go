package services

import (
	"bytes"
	"testing"
	"time"

	"gymdesk-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateMembersExcel(t *testing.T) {
	started := date(2024, time.May, 1)
	members := []models.Member{
		{SerialNumber: 1, Name: "Asha", Email: "asha@example.com", Phone: "900", Gender: models.GenderFemale,
			Duration: 3, Amount: "2500", PaymentMode: models.PaymentModeUPI, DOJ: date(2024, time.January, 15), Verified: true},
		{SerialNumber: 2, Name: "Ravi", Phone: "901", Gender: models.GenderMale,
			Duration: 1, Amount: "1000", PaymentMode: models.PaymentModeCash, DOJ: date(2024, time.February, 1), PlanStarted: &started},
	}

	data, err := GenerateMembersExcel(members)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{membersSheet}, f.GetSheetList())

	rows, err := f.GetRows(membersSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, MembersExportHeader, rows[0])

	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Asha", rows[1][1])
	assert.Equal(t, "2024-01-15", rows[1][8])
	assert.Equal(t, "2024-04-15", rows[1][10])
	assert.Equal(t, "Yes", rows[1][11])

	assert.Equal(t, "Ravi", rows[2][1])
	assert.Equal(t, "cash", rows[2][7])
	assert.Equal(t, "2024-05-01", rows[2][9])
	assert.Equal(t, "2024-06-01", rows[2][10])
	assert.Equal(t, "No", rows[2][11])
}

func TestGenerateMembersExcelEmpty(t *testing.T) {
	data, err := GenerateMembersExcel(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(membersSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestMembersExportFilename(t *testing.T) {
	assert.Equal(t, "members-2024-04-10.xlsx", MembersExportFilename(testToday))
}
