package images

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultExt = ".png"
	URLPrefix  = "/images/"
)

var (
	ErrDirMissing    = errors.New("images folder does not exist")
	ErrDirEmpty      = errors.New("no images found in the folder")
	ErrImageNotFound = errors.New("image not found")
)

// Directory is a read-only folder of pre-made profile images.
type Directory struct {
	path string
	ext  string
	intN func(n int) int
}

func NewDirectory(path, ext string) *Directory {
	if ext == "" {
		ext = DefaultExt
	}
	return &Directory{path: path, ext: ext, intN: rand.Intn}
}

// List returns the names of regular files with the configured extension.
func (d *Directory) List() ([]string, error) {
	entries, err := os.ReadDir(d.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrDirMissing
		}
		return nil, fmt.Errorf("Directory.List(): failed to read %s: %w", d.path, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() || !strings.HasSuffix(entry.Name(), d.ext) {
			continue
		}
		names = append(names, entry.Name())
	}
	if len(names) == 0 {
		return nil, ErrDirEmpty
	}
	return names, nil
}

// Pick returns one image name chosen uniformly at random.
func (d *Directory) Pick() (string, error) {
	names, err := d.List()
	if err != nil {
		return "", err
	}
	return names[d.intN(len(names))], nil
}

// URL is the public path the image is served from.
func URL(name string) string {
	return URLPrefix + name
}

// Resolve maps a requested file name to a path inside the directory.
// Anything that is not a plain regular file directly inside the directory
// is reported as ErrImageNotFound.
func (d *Directory) Resolve(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return "", ErrImageNotFound
	}

	full := filepath.Join(d.path, name)
	rel, err := filepath.Rel(d.path, full)
	if err != nil || rel != name {
		return "", ErrImageNotFound
	}

	// Lstat so a symlink cannot point outside the folder
	info, err := os.Lstat(full)
	if err != nil || !info.Mode().IsRegular() {
		return "", ErrImageNotFound
	}
	return full, nil
}
