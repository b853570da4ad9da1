// SPDX-License-Identifier: MPL-2.0

package watch

import "errors"

// isFatalFsnotifyError reports whether err leaves the watcher unable to
// deliver events, in which case Run stops.
func isFatalFsnotifyError(err error) bool {
	for _, errno := range fatalErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}
	return false
}
