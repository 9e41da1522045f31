//go:build !windows

package envpath

// unsupportedStore keeps the tree building on non-windows hosts; the tool
// targets the Windows environment-variable model only.
type unsupportedStore struct{}

// NewSystemStore returns a store whose operations fail with ErrUnsupported.
func NewSystemStore() Store {
	return unsupportedStore{}
}

func (unsupportedStore) Read(Scope) (string, error) {
	return "", ErrUnsupported
}

func (unsupportedStore) Write(Scope, string) error {
	return ErrUnsupported
}
