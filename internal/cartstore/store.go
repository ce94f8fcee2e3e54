package cartstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/davidfabkj12/mikombo-front/internal/cart"
)

const fileName = "cart.json"

// Store owns the canonical cart state for one browsing session and mirrors it
// to a file in the session's data directory on every mutation. All access goes
// through the mutex, so mutations are strictly serialized.
type Store struct {
	mu     sync.Mutex
	path   string
	state  cart.State
	logger *log.Logger
}

func Open(dir string, logger *log.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		path:   filepath.Join(dir, fileName),
		state:  cart.State{},
		logger: logger,
	}
	s.hydrate()
	return s, nil
}

// hydrate reads the persisted cart once at startup. A missing file, unreadable
// file or malformed payload all mean "no cart"; lines that do not satisfy the
// model invariants are dropped individually.
func (s *Store) hydrate() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Printf("cart state unreadable, starting empty: %v", err)
		}
		return
	}

	var lines cart.State
	if err := json.Unmarshal(raw, &lines); err != nil {
		s.logger.Printf("cart state malformed, starting empty: %v", err)
		return
	}

	seen := make(map[string]bool, len(lines))
	kept := make(cart.State, 0, len(lines))
	for _, ln := range lines {
		if ln.ProductID == "" || ln.Quantity < 1 || ln.UnitPrice.IsNegative() {
			continue
		}
		if seen[ln.ProductID] {
			continue
		}
		seen[ln.ProductID] = true
		kept = append(kept, ln)
	}
	if len(kept) != len(lines) {
		s.logger.Printf("dropped %d invalid cart line(s) on hydrate", len(lines)-len(kept))
	}
	s.state = kept
}

// Lines returns a copy of the current state. Callers must not assume later
// mutations are visible through it.
func (s *Store) Lines() cart.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(cart.State, len(s.state))
	copy(out, s.state)
	return out
}

// Apply replaces the state and synchronously persists it before returning, so
// a crash after any applied mutation cannot lose that mutation.
func (s *Store) Apply(next cart.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(next)
}

func (s *Store) apply(next cart.State) error {
	if err := s.persist(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

func (s *Store) persist(state cart.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode cart state: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write cart state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace cart state: %w", err)
	}
	return nil
}

// Add merges the snapshot into the cart. Quantity defaults to 1 when not
// positive.
func (s *Store) Add(snap cart.CatalogSnapshot, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(cart.Add(s.state, snap, quantity))
}

// SetQuantity sets a line's quantity; zero or below removes the line.
func (s *Store) SetQuantity(productID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(cart.SetQuantity(s.state, productID, quantity))
}

// Remove deletes a line; unknown product ids are a no-op.
func (s *Store) Remove(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(cart.Remove(s.state, productID))
}

// Clear empties the cart.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(cart.Clear())
}
