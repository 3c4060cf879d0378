package uuid

import (
	"fmt"

	satori "github.com/satori/go.uuid"
)

// New returns a random version 4 UUID, optionally prefixed
func New(prefix string) string {
	id := satori.NewV4().String()

	if prefix == "" {
		return id
	}

	return fmt.Sprintf("%s-%s", prefix, id)
}
