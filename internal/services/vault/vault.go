// Package vault persists the scenario set to a single file so a session can
// survive a server restart. Files are JSON, optionally encrypted with age
// using a scrypt passphrase.
package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"filippo.io/age"

	"fincalc/internal/models"
)

const (
	// ageHeader is the prefix of age-encrypted files.
	ageHeader = "age-encryption.org"

	// envelopeMagic guards against restoring a file that is not a scenario
	// export (or was decrypted with the wrong passphrase).
	envelopeMagic = "fincalc-scenarios"

	envelopeVersion = 1

	minPassphraseLen = 8
)

var (
	// ErrLocked is returned when an encrypted file is read without a
	// passphrase having been set.
	ErrLocked = errors.New("vault is locked")

	// ErrBadPassphrase is returned when decryption or envelope
	// verification fails.
	ErrBadPassphrase = errors.New("incorrect passphrase")

	// ErrNotExport is returned when a restored file is not a scenario
	// export.
	ErrNotExport = errors.New("file is not a scenario export")
)

// envelope is the on-disk format.
type envelope struct {
	Magic      string             `json:"magic"`
	Version    int                `json:"version"`
	ExportedAt time.Time          `json:"exported_at"`
	Scenarios  []*models.Scenario `json:"scenarios"`
}

// Vault exports and restores scenario sets at a fixed path. With a
// passphrase set, exports are encrypted and encrypted files can be
// restored; without one, files are written and read as plain JSON.
type Vault struct {
	path string

	mu        sync.RWMutex
	identity  *age.ScryptIdentity
	recipient *age.ScryptRecipient
}

// New creates a vault reading and writing the given file path.
func New(path string) *Vault {
	return &Vault{path: path}
}

// Path returns the vault file path.
func (v *Vault) Path() string {
	return v.path
}

// Unlock derives the encryption identity from the passphrase. Subsequent
// exports are encrypted and encrypted restores become possible.
func (v *Vault) Unlock(passphrase string) error {
	if len(passphrase) < minPassphraseLen {
		return fmt.Errorf("passphrase must be at least %d characters", minPassphraseLen)
	}

	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return fmt.Errorf("failed to create identity: %w", err)
	}
	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return fmt.Errorf("failed to create recipient: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.identity = identity
	v.recipient = recipient
	return nil
}

// Lock clears the passphrase-derived keys from memory.
func (v *Vault) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.identity = nil
	v.recipient = nil
}

// Unlocked reports whether a passphrase has been set.
func (v *Vault) Unlocked() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.identity != nil
}

// Export writes the scenario set to the vault file, encrypting when
// unlocked. The write is atomic: temp file in the same directory, then
// rename.
func (v *Vault) Export(scenarios []*models.Scenario) error {
	env := envelope{
		Magic:      envelopeMagic,
		Version:    envelopeVersion,
		ExportedAt: time.Now().UTC(),
		Scenarios:  scenarios,
	}

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scenarios: %w", err)
	}

	v.mu.RLock()
	recipient := v.recipient
	v.mu.RUnlock()

	if recipient != nil {
		data, err = encryptData(data, recipient)
		if err != nil {
			return fmt.Errorf("failed to encrypt export: %w", err)
		}
	}

	return atomicWrite(v.path, data, 0600)
}

// Restore reads the vault file and returns its scenario set. Encrypted
// files require the vault to be unlocked with the passphrase they were
// exported under.
func (v *Vault) Restore() ([]*models.Scenario, error) {
	data, err := os.ReadFile(v.path)
	if err != nil {
		return nil, err
	}

	if isAgeEncrypted(data) {
		v.mu.RLock()
		identity := v.identity
		v.mu.RUnlock()

		if identity == nil {
			return nil, ErrLocked
		}
		data, err = decryptData(data, identity)
		if err != nil {
			return nil, ErrBadPassphrase
		}
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotExport, err)
	}
	if env.Magic != envelopeMagic {
		return nil, ErrNotExport
	}

	return env.Scenarios, nil
}

// atomicWrite writes data via a temp file and rename.
func atomicWrite(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, perm); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

// isAgeEncrypted checks for the age encryption header.
func isAgeEncrypted(data []byte) bool {
	return len(data) > len(ageHeader) && string(data[:len(ageHeader)]) == ageHeader
}
