package ask

import "errors"

// ErrNoAskService is returned when no generation provider is configured.
var ErrNoAskService = errors.New("no generation provider configured")
