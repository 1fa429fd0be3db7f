package dom

import (
	"fmt"

	"github.com/pkg/errors"
)

// Exception names used by this package.
// https://webidl.spec.whatwg.org/#idl-DOMException-error-names
const (
	InvalidCharacterError = "InvalidCharacterError"
	HierarchyRequestError = "HierarchyRequestError"
	NotFoundError         = "NotFoundError"
	TypeError             = "TypeError"
)

// Exception is https://webidl.spec.whatwg.org/#idl-DOMException
type Exception struct {
	Name    string
	Message string
}

func (e *Exception) Error() string {
	return e.Name + ": " + e.Message
}

func newException(name, format string, args ...interface{}) error {
	return errors.WithStack(&Exception{Name: name, Message: fmt.Sprintf(format, args...)})
}

// IsException reports whether err carries an Exception with the given name.
func IsException(err error, name string) bool {
	var e *Exception
	return errors.As(err, &e) && e.Name == name
}
