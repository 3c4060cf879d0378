package resizer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDeclined is returned when the operator answers no to a confirmation.
// Nothing has been changed by the step that asked.
var ErrDeclined = errors.New("aborted by operator")

// ResolutionError means the instance or volume to resize could not be
// determined. It is always returned before any remote state is changed.
type ResolutionError struct {
	Kind       string
	Identifier string
	Reason     string
	Candidates []string
}

func (e ResolutionError) Error() string {
	msg := fmt.Sprintf("resolving %s %s: %s", e.Kind, e.Identifier, e.Reason)
	if len(e.Candidates) > 0 {
		msg = fmt.Sprintf("%s (%s)", msg, strings.Join(e.Candidates, ", "))
	}
	return msg
}

// PreconditionError means the resize is unsafe or pointless as requested
type PreconditionError struct {
	Resource string
	Reason   string
}

func (e PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Resource, e.Reason)
}

// UnexpectedStateError means a resource is in a state the resize cannot act
// on. The resource is left as it is.
type UnexpectedStateError struct {
	Resource string
	State    string
	Action   string
}

func (e UnexpectedStateError) Error() string {
	return fmt.Sprintf("cannot %s %s in state %s, operator intervention required", e.Action, e.Resource, e.State)
}

// DetachedVolumeError is returned when the old volume was detached but the new
// volume is not attached in its place. The instance has no volume at Device
// until one is attached by hand.
type DetachedVolumeError struct {
	InstanceID string
	VolumeID   string
	Device     string
	Err        error
}

func (e DetachedVolumeError) Error() string {
	return fmt.Sprintf("volume %s was detached from instance %s at %s and nothing is attached there: %s", e.VolumeID, e.InstanceID, e.Device, e.Err)
}

func (e DetachedVolumeError) Unwrap() error {
	return e.Err
}
