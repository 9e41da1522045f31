//go:build windows

package envpath

import (
	"golang.org/x/sys/windows/registry"
)

// Registry locations of the two PATH partitions.
const (
	machineEnvKey = `SYSTEM\CurrentControlSet\Control\Session Manager\Environment`
	userEnvKey    = `Environment`
)

// registryStore reads and writes the Path values under
// HKLM\...\Session Manager\Environment and HKCU\Environment.
type registryStore struct{}

// NewSystemStore returns the registry-backed persisted environment store.
func NewSystemStore() Store {
	return registryStore{}
}

func keyFor(scope Scope) (registry.Key, string) {
	if scope == Machine {
		return registry.LOCAL_MACHINE, machineEnvKey
	}
	return registry.CURRENT_USER, userEnvKey
}

func (registryStore) Read(scope Scope) (string, error) {
	root, path := keyFor(scope)
	k, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	val, _, err := k.GetStringValue("Path")
	if err == registry.ErrNotExist {
		// An absent Path value is an empty list, not a failure.
		return "", nil
	}
	return val, err
}

func (registryStore) Write(scope Scope, value string) error {
	root, path := keyFor(scope)
	// Opening HKLM with SET_VALUE fails without elevation; the error is
	// reported to the caller, which downgrades it to a warning.
	k, err := registry.OpenKey(root, path, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	return k.SetStringValue("Path", value)
}
