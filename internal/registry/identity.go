package registry

import (
	"io/fs"
	"os"
)

// FileSystem exposes the filesystem operations required by path identity
// matching.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	SameFile(firstInfo fs.FileInfo, secondInfo fs.FileInfo) bool
}

// OSFileSystem implements FileSystem using the operating system primitives.
type OSFileSystem struct{}

// Stat retrieves file metadata.
func (OSFileSystem) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// SameFile reports whether two metadata records describe the same underlying
// filesystem object.
func (OSFileSystem) SameFile(firstInfo fs.FileInfo, secondInfo fs.FileInfo) bool {
	return os.SameFile(firstInfo, secondInfo)
}

// PhysicalPathMatcher decides whether two paths name the same physical
// filesystem object, independent of textual spelling, symlinks, or
// relative-versus-absolute differences.
type PhysicalPathMatcher struct {
	fileSystem FileSystem
}

// NewPhysicalPathMatcher constructs a matcher backed by the provided
// filesystem, defaulting to the operating system implementation.
func NewPhysicalPathMatcher(fileSystem FileSystem) *PhysicalPathMatcher {
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}
	return &PhysicalPathMatcher{fileSystem: fileSystem}
}

// SameLocation reports whether candidatePath and trackedPath refer to the
// same underlying filesystem object. Paths that cannot be stat'ed report
// false rather than an error.
func (matcher *PhysicalPathMatcher) SameLocation(candidatePath string, trackedPath string) bool {
	candidateInfo, candidateStatError := matcher.fileSystem.Stat(candidatePath)
	if candidateStatError != nil {
		return false
	}

	trackedInfo, trackedStatError := matcher.fileSystem.Stat(trackedPath)
	if trackedStatError != nil {
		return false
	}

	return matcher.fileSystem.SameFile(candidateInfo, trackedInfo)
}
