package container

import (
	"errors"
	"fmt"
)

// UnregisteredServiceError is returned by Resolve when a token is not bound
// anywhere in the local-then-parent chain. It carries the missing token for
// diagnostics; a missing service almost always indicates a wiring defect in
// the suite bootstrap, so callers typically let it fail the test.
type UnregisteredServiceError struct {
	Token string
}

func (e *UnregisteredServiceError) Error() string {
	return fmt.Sprintf("container: no service registered for token %q", e.Token)
}

// IsUnregistered reports whether err is an UnregisteredServiceError.
func IsUnregistered(err error) bool {
	var e *UnregisteredServiceError
	return errors.As(err, &e)
}
