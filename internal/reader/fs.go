// SPDX-License-Identifier: MPL-2.0

package reader

import (
	"io/fs"
	"os"
)

type (
	// FileSystem is the directory-listing and file-reading collaborator.
	FileSystem interface {
		ReadDir(name string) ([]fs.DirEntry, error)
		ReadFile(name string) ([]byte, error)
	}

	// OSFileSystem reads from the host file system.
	OSFileSystem struct{}
)

// ReadDir lists the immediate entries of a directory.
func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) { return os.ReadDir(name) }

// ReadFile returns the full content of a file.
func (OSFileSystem) ReadFile(name string) ([]byte, error) { return os.ReadFile(name) }
