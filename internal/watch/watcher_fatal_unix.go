// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package watch

import "syscall"

// fatalErrnos are inotify resource exhaustion errors. Once one is reported
// no further events arrive for the package roots.
var fatalErrnos = []syscall.Errno{
	syscall.ENOSPC, // fs.inotify.max_user_watches
	syscall.EMFILE,
	syscall.ENFILE,
}
