package wizard

import "errors"

// ErrAborted is returned when the user interrupts the wizard (Ctrl+C).
var ErrAborted = errors.New("wizard: aborted by user")
