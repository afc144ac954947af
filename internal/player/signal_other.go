//go:build !unix

package player

import (
	"errors"
	"os"
)

var errPauseUnsupported = errors.New("pause is not supported on this platform")

func suspend(*os.Process) error { return errPauseUnsupported }

func resume(*os.Process) error { return errPauseUnsupported }
