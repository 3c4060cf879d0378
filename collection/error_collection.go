package collection

import (
	"errors"
	"strings"
	"sync"
)

// Error gathers problems found across several checks so they can be reported
// together
type Error struct {
	sync.Mutex
	errs []error
}

// Add records err; nil errors are ignored
func (e *Error) Add(err error) {
	if err == nil {
		return
	}

	e.Lock()
	defer e.Unlock()

	e.errs = append(e.errs, err)
}

func (e *Error) Len() int {
	e.Lock()
	defer e.Unlock()

	return len(e.errs)
}

// Error returns nil when nothing was collected and the single error unchanged
// when only one was collected
func (e *Error) Error() error {
	e.Lock()
	defer e.Unlock()

	switch len(e.errs) {
	case 0:
		return nil
	case 1:
		return e.errs[0]
	}

	msgs := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		msgs = append(msgs, err.Error())
	}
	return errors.New(strings.Join(msgs, "; "))
}
