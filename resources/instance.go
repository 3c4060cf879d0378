package resources

import (
	"context"

	"ebs-volume-resizer/collection"
)

// Instance lifecycle states as reported by EC2
const (
	InstanceStatePending      = "pending"
	InstanceStateRunning      = "running"
	InstanceStateStopping     = "stopping"
	InstanceStateStopped      = "stopped"
	InstanceStateShuttingDown = "shutting-down"
	InstanceStateTerminated   = "terminated"
)

// Values of the instanceInitiatedShutdownBehavior attribute
const (
	ShutdownBehaviorStop      = "stop"
	ShutdownBehaviorTerminate = "terminate"
)

// InstanceDriver abstracts the EC2 calls needed to find an instance and move it
// between running and stopped
//
//counterfeiter:generate . InstanceDriver
type InstanceDriver interface {
	FindByName(ctx context.Context, name string) ([]Instance, error)
	Get(ctx context.Context, instanceID string) (Instance, error)
	ShutdownBehavior(ctx context.Context, instanceID string) (string, error)
	Stop(ctx context.Context, instanceID string) error
	Start(ctx context.Context, instanceID string) error
	WaitForState(ctx context.Context, instanceID string, state string) (Instance, error)
}

// Instance represents an EC2 instance. Name falls back to the ID when the
// instance carries no Name tag.
type Instance struct {
	ID             string
	Name           string
	State          string
	RootDeviceName string
	Tags           collection.Tags
}
