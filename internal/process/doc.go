// Package process stops a headless browser together with the helper
// processes it spawned, so an interrupted render leaves nothing running.
package process

import (
	"errors"
	"fmt"
)

// ErrInvalidPID is returned for PIDs that would address the caller's own
// process group or init.
var ErrInvalidPID = errors.New("invalid pid")

func checkPID(pid int) error {
	if pid <= 1 {
		return fmt.Errorf("%w: %d", ErrInvalidPID, pid)
	}
	return nil
}
