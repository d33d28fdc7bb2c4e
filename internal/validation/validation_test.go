package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/alfieapp/quarterly/internal/model"
	"github.com/stretchr/testify/require"
)

func TestValidateQuarterName(t *testing.T) {
	require.NoError(t, ValidateQuarterName("Q1 2026"))
	require.Error(t, ValidateQuarterName(""))
	require.Error(t, ValidateQuarterName("   "))
	require.Error(t, ValidateQuarterName(strings.Repeat("x", 101)))
	require.NoError(t, ValidateQuarterName(strings.Repeat("x", 100)))
}

func TestValidateGoals(t *testing.T) {
	require.NoError(t, ValidateGoals(10, 5000))
	require.Error(t, ValidateGoals(0, 5000))
	require.Error(t, ValidateGoals(-1, 5000))
	require.Error(t, ValidateGoals(10, 0))
	require.Error(t, ValidateGoals(10, -0.5))
}

func TestValidateMeeting(t *testing.T) {
	date := time.Now()

	require.NoError(t, ValidateMeeting("Jamie", "Acme", date, model.OutcomeScheduled))
	require.Error(t, ValidateMeeting("", "Acme", date, model.OutcomeScheduled))
	require.Error(t, ValidateMeeting("Jamie", "", date, model.OutcomeScheduled))
	require.Error(t, ValidateMeeting("Jamie", "Acme", time.Time{}, model.OutcomeScheduled))
	require.Error(t, ValidateMeeting("Jamie", "Acme", date, "Maybe"))
}

func TestValidateMeetingAcceptsAllOutcomes(t *testing.T) {
	date := time.Now()
	for _, outcome := range model.Outcomes {
		require.NoError(t, ValidateMeeting("Jamie", "Acme", date, outcome))
	}
}

func TestValidateDeal(t *testing.T) {
	require.NoError(t, ValidateDeal("Acme expansion", 1200))
	require.NoError(t, ValidateDeal("Acme expansion", 0), "zero value deals are allowed")
	require.Error(t, ValidateDeal("", 1200))
	require.Error(t, ValidateDeal("Acme expansion", -1))
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("alfie@example.com"))
	require.Error(t, ValidateEmail(""))
	require.Error(t, ValidateEmail("not-an-email"))
	require.Error(t, ValidateEmail(strings.Repeat("x", 250)+"@e.com"))
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, ValidatePassword("a-long-secure-passphrase"))
	require.Error(t, ValidatePassword("short"))
	require.Error(t, ValidatePassword("password12345"), "common patterns rejected")
	require.Error(t, ValidatePassword(strings.Repeat("x", 73)))
}
