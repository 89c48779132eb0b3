package scenario

import "errors"

// ErrInvalidScenario is wrapped by every validation failure.
var ErrInvalidScenario = errors.New("scenario: invalid")
