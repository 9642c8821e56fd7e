package scan

import "errors"

var (
	// ErrAlreadyRunning is returned by Start when a pass is already attached.
	ErrAlreadyRunning = errors.New("scan: already running")
	// ErrRunning is returned by Configure outside the Idle state.
	ErrRunning = errors.New("scan: cannot configure while running")
	// ErrClipProfileUnsupported means clip keyframes exist only for Linear.
	ErrClipProfileUnsupported = errors.New("scan: clip keyframes only support linear speed")
	ErrUnknownDirection       = errors.New("scan: unknown direction")
	ErrUnknownSpeed           = errors.New("scan: unknown speed profile")
)
