package pie

import (
	stderrors "errors"
	"fmt"
)

// ErrNotMounted is raised when a menu is attached before its child has
// been laid out.
var ErrNotMounted = stderrors.New("pie menu child is not mounted")

func panicErr(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}
