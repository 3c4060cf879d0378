package resources

import "context"

// Attachment states
const (
	AttachmentStateAttaching = "attaching"
	AttachmentStateAttached  = "attached"
	AttachmentStateDetaching = "detaching"
	AttachmentStateDetached  = "detached"
)

//counterfeiter:generate . AttachmentDriver
type AttachmentDriver interface {
	Detach(ctx context.Context, driverConfig AttachmentDriverConfig) error
	Attach(ctx context.Context, driverConfig AttachmentDriverConfig) (VolumeAttachment, error)
}

type VolumeAttachment struct {
	InstanceID string
	Device     string
	State      string
}

type AttachmentDriverConfig struct {
	InstanceID string
	VolumeID   string
	Device     string
}
