// Package scenarios keeps saved loan calculations for side-by-side
// comparison. The store is in-memory only: scenarios live for the lifetime
// of the server process unless exported through the vault.
package scenarios

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"fincalc/internal/models"
)

// DefaultCap bounds the store when no cap is configured.
const DefaultCap = 50

var (
	// ErrNotFound is returned when no scenario has the requested ID.
	ErrNotFound = errors.New("scenario not found")

	// ErrEmptyName is returned when a scenario is saved without a name.
	ErrEmptyName = errors.New("scenario name is required")
)

// Store holds saved scenarios, newest first, capped at a fixed size. Safe
// for concurrent use by HTTP handlers.
type Store struct {
	mu        sync.RWMutex
	cap       int
	scenarios []*models.Scenario
}

// NewStore creates an empty store holding at most cap scenarios. A cap of
// zero or less falls back to DefaultCap.
func NewStore(cap int) *Store {
	if cap <= 0 {
		cap = DefaultCap
	}
	return &Store{cap: cap}
}

// Save snapshots a loan calculation under the given name and returns the
// stored scenario with its generated ID. Only successful loan_payment
// results can be saved. When the store is full the oldest scenario is
// evicted.
func (s *Store) Save(name string, inputs models.CalculationInputs, result models.CalculationResult) (*models.Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if result.CalculationTarget != models.TargetLoanPayment {
		return nil, fmt.Errorf("only %s results can be saved, got %q", models.TargetLoanPayment, result.CalculationTarget)
	}
	if result.HasError() {
		return nil, fmt.Errorf("cannot save a failed calculation: %s", result.Error)
	}

	scenario := &models.Scenario{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
		Inputs:    inputs,
		Result:    result,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios = append([]*models.Scenario{scenario}, s.scenarios...)
	if len(s.scenarios) > s.cap {
		s.scenarios = s.scenarios[:s.cap]
	}

	return scenario, nil
}

// Get returns the scenario with the given ID.
func (s *Store) Get(id string) (*models.Scenario, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, sc := range s.scenarios {
		if sc.ID == id {
			return sc, nil
		}
	}
	return nil, ErrNotFound
}

// List returns all scenarios, newest first.
func (s *Store) List() []*models.Scenario {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

// Delete removes the scenario with the given ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, sc := range s.scenarios {
		if sc.ID == id {
			s.scenarios = append(s.scenarios[:idx], s.scenarios[idx+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Clear removes all scenarios.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = nil
}

// Len returns the number of stored scenarios.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.scenarios)
}

// Replace swaps the store contents, newest first, trimming to the cap. Used
// by vault restore.
func (s *Store) Replace(scenarios []*models.Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scenarios = make([]*models.Scenario, 0, len(scenarios))
	s.scenarios = append(s.scenarios, scenarios...)
	if len(s.scenarios) > s.cap {
		s.scenarios = s.scenarios[:s.cap]
	}
}
