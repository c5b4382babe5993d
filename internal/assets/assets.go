// Package assets maps logical asset categories to locations under the
// application data directory. The base directory is injected so path
// resolution stays a pure computation over configuration.
package assets

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/gitchest/gitchest/pkg/logger"
)

// AssetPath is the closed set of asset categories the application stores on
// disk. Each category knows its relative location and which directory must
// exist before the location is usable.
type AssetPath interface {
	relative() string
	// dir is the directory to create on Ensure. For a single avatar file
	// that is the avatars directory, not the file path itself.
	dir() string
}

// AvatarsDir is the directory holding all cached avatar images.
type AvatarsDir struct{}

func (AvatarsDir) relative() string { return "assets/avatars" }
func (p AvatarsDir) dir() string    { return p.relative() }

// AvatarFile is a single cached avatar image by file name.
type AvatarFile struct {
	Name string
}

func (p AvatarFile) relative() string { return path.Join("assets/avatars", p.Name) }
func (AvatarFile) dir() string        { return AvatarsDir{}.relative() }

// ReadmeAssets is the directory holding cached readme images for one repository.
type ReadmeAssets struct {
	Owner string
	Repo  string
}

func (p ReadmeAssets) relative() string {
	return fmt.Sprintf("assets/repos/%s/%s/readme", p.Owner, p.Repo)
}
func (p ReadmeAssets) dir() string { return p.relative() }

// Resolver resolves asset categories against a configured data directory.
type Resolver struct {
	dataDir string
}

func NewResolver(dataDir string) *Resolver {
	return &Resolver{
		dataDir: dataDir,
	}
}

// Resolve returns the absolute path for an asset category. It never touches
// the filesystem.
func (r *Resolver) Resolve(p AssetPath) string {
	return filepath.Join(r.dataDir, filepath.FromSlash(p.relative()))
}

// Ensure returns the resolved path with its backing directory guaranteed to
// exist, creating it if needed.
func (r *Resolver) Ensure(p AssetPath) (string, error) {
	dir := filepath.Join(r.dataDir, filepath.FromSlash(p.dir()))
	if err := ensureDir(dir); err != nil {
		return "", err
	}
	return r.Resolve(p), nil
}

func ensureDir(dir string) error {
	if _, err := os.Stat(dir); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	logger.WithField("dir", dir).Info("creating non-existent directory")
	return os.MkdirAll(dir, 0o755)
}
