// Package envpath gives the rest of the program a current view of the
// persisted PATH. Environment variable changes written by one process are
// not visible to an already-running process, so the search path used for
// locating tools is rebuilt from the persisted store on every use instead
// of being read once from the process environment.
package envpath

import "errors"

// Scope selects which partition of the persisted environment store a read
// or write targets. Machine-scope writes require elevated privilege.
type Scope int

const (
	Machine Scope = iota
	User
)

func (s Scope) String() string {
	if s == Machine {
		return "machine"
	}
	return "user"
}

// ErrUnsupported is returned by the system store on platforms without a
// persisted per-scope environment registry.
var ErrUnsupported = errors.New("persisted environment store is only available on windows")

// Store is read/write access to the persisted PATH value of one scope.
// Values are raw semicolon-delimited lists exactly as stored.
type Store interface {
	Read(scope Scope) (string, error)
	Write(scope Scope, value string) error
}
