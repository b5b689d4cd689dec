package domain

import (
	"errors"
	"fmt"
)

// NotFoundError reports an update against an id that is not in the
// collection. Reads and deletes on unknown ids are not errors; they
// signal absence through their return values instead.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Kind, e.ID)
}

// IsNotFound reports whether err is a NotFoundError anywhere in its chain.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
