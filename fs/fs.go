/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package fs provides filesystem abstractions for themeref.
package fs

import (
	"io/fs"
	"os"
)

// FileSystem provides the filesystem operations the theme-source loaders
// and config layer need. The interface embeds fs.FS so implementations
// work with fs.WalkDir during glob expansion.
type FileSystem interface {
	// ReadFile reads the entire contents of a file.
	ReadFile(name string) ([]byte, error)

	// ReadDir reads the named directory.
	ReadDir(name string) ([]fs.DirEntry, error)

	// Stat returns file info for the named file.
	Stat(name string) (fs.FileInfo, error)

	// Exists reports whether the path exists.
	Exists(path string) bool

	// Open opens the named file; required for fs.WalkDir compatibility.
	Open(name string) (fs.File, error)
}

// OSFileSystem implements FileSystem using the standard os package.
type OSFileSystem struct{}

// NewOSFileSystem creates a filesystem backed by the real OS filesystem.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// ReadFile reads the entire contents of a file.
func (f *OSFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// ReadDir reads the named directory.
func (f *OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat returns file info for the named file.
func (f *OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Exists reports whether the path exists.
func (f *OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Open opens the named file.
func (f *OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}
