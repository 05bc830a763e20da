package vault

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/internal/models"
	"fincalc/internal/services/engine"
)

func testScenarios(t *testing.T) []*models.Scenario {
	t.Helper()

	inputs := models.CalculationInputs{
		CalculationTarget: models.TargetLoanPayment,
		LoanAmount:        250000,
		LoanInterestRate:  3.9,
		LoanTerm:          25,
		PaymentFrequency:  models.PayMonthly,
	}
	result := engine.Calculate(inputs)
	require.Empty(t, result.Error)

	return []*models.Scenario{
		{ID: "a", Name: "25yr fixed", Inputs: inputs, Result: result},
	}
}

func TestVault_PlainRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.vault")
	v := New(path)

	require.NoError(t, v.Export(testScenarios(t)))

	// Without a passphrase the file is readable JSON.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), envelopeMagic)
	assert.Contains(t, string(data), "25yr fixed")

	restored, err := v.Restore()
	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Equal(t, "25yr fixed", restored[0].Name)
	assert.Len(t, restored[0].Result.AmortizationSchedule, 300)
}

func TestVault_EncryptedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.vault")
	v := New(path)

	require.NoError(t, v.Unlock("correct horse battery"))
	require.NoError(t, v.Export(testScenarios(t)))

	// Ciphertext on disk, no plaintext leakage.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, isAgeEncrypted(data))
	assert.NotContains(t, string(data), "25yr fixed")

	restored, err := v.Restore()
	require.NoError(t, err)
	require.Len(t, restored, 1)
	assert.Equal(t, "25yr fixed", restored[0].Name)
}

func TestVault_RestoreEncryptedWhileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.vault")

	writer := New(path)
	require.NoError(t, writer.Unlock("correct horse battery"))
	require.NoError(t, writer.Export(testScenarios(t)))

	reader := New(path)
	_, err := reader.Restore()
	assert.ErrorIs(t, err, ErrLocked)

	writer.Lock()
	_, err = writer.Restore()
	assert.ErrorIs(t, err, ErrLocked)
}

func TestVault_WrongPassphrase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.vault")

	writer := New(path)
	require.NoError(t, writer.Unlock("correct horse battery"))
	require.NoError(t, writer.Export(testScenarios(t)))

	reader := New(path)
	require.NoError(t, reader.Unlock("wrong horse battery"))
	_, err := reader.Restore()
	assert.ErrorIs(t, err, ErrBadPassphrase)
}

func TestVault_ShortPassphraseRejected(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "scenarios.vault"))
	assert.Error(t, v.Unlock("short"))
	assert.False(t, v.Unlocked())
}

func TestVault_RestoreRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"magic":"something-else"}`), 0600))

	_, err := New(path).Restore()
	assert.ErrorIs(t, err, ErrNotExport)
}

func TestVault_RestoreMissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent.vault")).Restore()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVault_ExportOverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.vault")
	v := New(path)

	require.NoError(t, v.Export(testScenarios(t)))
	require.NoError(t, v.Export(nil))

	restored, err := v.Restore()
	require.NoError(t, err)
	assert.Empty(t, restored)

	// No temp file left behind.
	_, err = os.Stat(path + ".tmp")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
