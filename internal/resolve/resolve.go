// Package resolve maps request paths onto files of the served directory. Nothing outside
// of the directory is ever opened: paths are normalized and checked lexically first, and
// all the filesystem access goes through os.Root, so symlinks can't escape it either.
package resolve

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/indigo-web/statik/http/mime"
)

var ErrEscapesRoot = errors.New("path escapes the served root")

// Target is the outcome of resolving a path. Info is nil if nothing was found.
type Target struct {
	// Name is the path of the file relative to the root, using forward slashes.
	Name string
	Info fs.FileInfo
	// Fallback is set when the requested document is missing and the not-found page
	// is served instead.
	Fallback bool
}

func (t Target) Found() bool {
	return t.Info != nil
}

type Resolver struct {
	root     *os.Root
	index    string
	notFound string
}

// New opens the directory as the served root. Index is served for the root path and
// for directories, notFound replaces missing HTML documents.
func New(dir, index, notFound string) (*Resolver, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, fmt.Errorf("open served root: %w", err)
	}

	return &Resolver{
		root:     root,
		index:    index,
		notFound: notFound,
	}, nil
}

// Resolve finds the file corresponding to the request path. The path must be already
// percent-decoded and have the leading slash trimmed. Empty path stands for the index.
//
// ErrEscapesRoot is returned alongside a not-found target (or the not-found page, if an
// HTML document was requested) when the path leads outside the root. Such a path is
// never touched on the filesystem.
func (r *Resolver) Resolve(requested string) (Target, error) {
	name, err := Clean(requested)
	if err != nil {
		return r.missing(requested), err
	}

	if len(name) == 0 {
		name = r.index
	}

	if info, err := r.root.Stat(name); err == nil {
		switch {
		case info.Mode().IsRegular():
			return Target{Name: name, Info: info}, nil
		case info.IsDir():
			index := path.Join(name, r.index)
			if info, err = r.root.Stat(index); err == nil && info.Mode().IsRegular() {
				return Target{Name: index, Info: info}, nil
			}
		}
	}

	return r.missing(name), nil
}

func (r *Resolver) missing(requested string) Target {
	if !mime.IsHTML(requested) {
		return Target{Name: requested}
	}

	info, err := r.root.Stat(r.notFound)
	if err != nil || !info.Mode().IsRegular() {
		return Target{Name: requested}
	}

	return Target{Name: r.notFound, Info: info, Fallback: true}
}

// Read returns the whole content of the found target.
func (r *Resolver) Read(target Target) ([]byte, error) {
	if !target.Found() {
		return nil, fs.ErrNotExist
	}

	file, err := r.root.Open(target.Name)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	buff := bytes.NewBuffer(make([]byte, 0, target.Info.Size()))
	_, err = buff.ReadFrom(file)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

func (r *Resolver) Close() error {
	return r.root.Close()
}

// Clean normalizes the slash-separated path and makes sure it stays within the root.
// Empty result stands for the root itself.
func Clean(requested string) (string, error) {
	if len(requested) == 0 {
		return "", nil
	}

	if requested[0] == '/' || requested[0] == '\\' {
		return "", ErrEscapesRoot
	}

	cleaned := path.Clean(requested)
	if cleaned == "." {
		return "", nil
	}

	if !filepath.IsLocal(filepath.FromSlash(cleaned)) {
		return "", ErrEscapesRoot
	}

	return cleaned, nil
}
