package resources

import "fmt"

// NotFoundError is returned by drivers when EC2 has no record of a resource
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
