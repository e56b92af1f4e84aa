package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	storeFilePermissionConstant           = fs.FileMode(0o644)
	storeDirectoryPermissionConstant      = fs.FileMode(0o755)
	storePathNotConfiguredMessageConstant = "registry store path not configured"
	storePermissionDeniedMessageConstant  = "registry store permission denied"
	storeFormatMessageConstant            = "registry store contents unparsable"
	storeSerializeMessageConstant         = "registry serialization failed"
	storeWriteMessageConstant             = "registry store write failed"
	storeSentinelErrorTemplateConstant    = "%w: %s: %v"
	storeReadErrorTemplateConstant        = "unable to read registry store at %s: %w"
)

// Failures surfaced by the persisted registry store.
var (
	ErrStorePathNotConfigured = errors.New(storePathNotConfiguredMessageConstant)
	ErrStorePermissionDenied  = errors.New(storePermissionDeniedMessageConstant)
	ErrStoreFormat            = errors.New(storeFormatMessageConstant)
	ErrStoreSerialize         = errors.New(storeSerializeMessageConstant)
	ErrStoreWrite             = errors.New(storeWriteMessageConstant)
)

// TOMLRegistryStore persists the registry as a single TOML document at a
// fixed file location.
type TOMLRegistryStore struct {
	filePath string
}

// NewTOMLRegistryStore constructs a store rooted at the provided file path.
func NewTOMLRegistryStore(filePath string) (*TOMLRegistryStore, error) {
	if len(filePath) == 0 {
		return nil, ErrStorePathNotConfigured
	}
	return &TOMLRegistryStore{filePath: filePath}, nil
}

// FilePath reports the store file location.
func (store *TOMLRegistryStore) FilePath() string {
	return store.filePath
}

// Load reads the full registry from disk. A missing store file yields an
// empty registry without creating the file; permission and parse failures
// surface the corresponding sentinel errors.
func (store *TOMLRegistryStore) Load() (Registry, error) {
	storeContents, readError := os.ReadFile(store.filePath)
	if readError != nil {
		switch {
		case errors.Is(readError, fs.ErrNotExist):
			return Registry{}, nil
		case errors.Is(readError, fs.ErrPermission):
			return Registry{}, fmt.Errorf(storeSentinelErrorTemplateConstant, ErrStorePermissionDenied, store.filePath, readError)
		default:
			return Registry{}, fmt.Errorf(storeReadErrorTemplateConstant, store.filePath, readError)
		}
	}

	loadedRegistry := Registry{}
	if decodeError := toml.Unmarshal(storeContents, &loadedRegistry); decodeError != nil {
		return Registry{}, fmt.Errorf(storeSentinelErrorTemplateConstant, ErrStoreFormat, store.filePath, decodeError)
	}

	return loadedRegistry, nil
}

// Save serializes the full registry and rewrites the store file in a single
// whole-file write, creating the parent directory when necessary.
func (store *TOMLRegistryStore) Save(currentRegistry Registry) error {
	encodedRegistry, encodeError := toml.Marshal(currentRegistry)
	if encodeError != nil {
		return fmt.Errorf(storeSentinelErrorTemplateConstant, ErrStoreSerialize, store.filePath, encodeError)
	}

	storeDirectory := filepath.Dir(store.filePath)
	if directoryError := os.MkdirAll(storeDirectory, storeDirectoryPermissionConstant); directoryError != nil {
		return fmt.Errorf(storeSentinelErrorTemplateConstant, ErrStoreWrite, storeDirectory, directoryError)
	}

	if writeError := os.WriteFile(store.filePath, encodedRegistry, storeFilePermissionConstant); writeError != nil {
		return fmt.Errorf(storeSentinelErrorTemplateConstant, ErrStoreWrite, store.filePath, writeError)
	}

	return nil
}
