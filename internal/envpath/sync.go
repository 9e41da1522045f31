package envpath

import (
	"strings"

	"flutter-bootstrap/internal/logger"
)

// Synchronizer rebuilds the in-memory search path from the persisted store.
// There is no change notification from the store, so callers must Refresh
// after any action that could have modified either scope and before any
// lookup that needs to see the result.
type Synchronizer struct {
	store Store
}

// NewSynchronizer returns a Synchronizer over the given store.
func NewSynchronizer(store Store) *Synchronizer {
	return &Synchronizer{store: store}
}

// Refresh reads both scopes and returns a fresh search path snapshot:
// machine-scope directories first, then user-scope, each preserving its
// stored order. The concatenation order matters because a tool present in
// both scopes resolves to the machine-scope copy, matching how Windows
// composes the effective PATH. The snapshot is disposable; it is never
// cached across calls.
func (s *Synchronizer) Refresh() []string {
	var dirs []string
	for _, scope := range []Scope{Machine, User} {
		val, err := s.store.Read(scope)
		if err != nil {
			logger.Debug("[DEBUG] Failed to read %s-scope PATH: %v\n", scope, err)
			continue
		}
		for _, dir := range strings.Split(val, ";") {
			if dir = strings.TrimSpace(dir); dir != "" {
				dirs = append(dirs, dir)
			}
		}
	}
	return dirs
}

// Append adds dir to the persisted PATH value of the given scope, preserving
// existing entries. If dir is already present (case-insensitive, Windows
// paths) the call succeeds without writing. A permission failure from the
// store is returned as-is; it is not retried here.
func (s *Synchronizer) Append(scope Scope, dir string) error {
	cur, err := s.store.Read(scope)
	if err != nil {
		return err
	}

	for _, existing := range strings.Split(cur, ";") {
		if strings.EqualFold(strings.TrimSpace(existing), dir) {
			logger.Debug("[DEBUG] %s already on %s-scope PATH\n", dir, scope)
			return nil
		}
	}

	next := dir
	if cur != "" {
		next = cur + ";" + dir
	}
	return s.store.Write(scope, next)
}
