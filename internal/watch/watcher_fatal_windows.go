// SPDX-License-Identifier: MPL-2.0

//go:build windows

package watch

import "syscall"

// fatalErrnos are ReadDirectoryChangesW failures the watcher cannot recover from.
var fatalErrnos = []syscall.Errno{
	syscall.Errno(4), // ERROR_TOO_MANY_OPEN_FILES
	syscall.Errno(6), // ERROR_INVALID_HANDLE, e.g. a package root was deleted
	syscall.Errno(8), // ERROR_NOT_ENOUGH_MEMORY
}
