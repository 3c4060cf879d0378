package resources

import (
	"context"

	"ebs-volume-resizer/collection"
)

// Volume lifecycle states
const (
	VolumeStateCreating  = "creating"
	VolumeStateAvailable = "available"
	VolumeStateInUse     = "in-use"
	VolumeStateDeleting  = "deleting"
	VolumeStateDeleted   = "deleted"
	VolumeStateError     = "error"
)

// Volume types which require provisioned IOPS or throughput to be carried over
const (
	VolumeTypeIo1 = "io1"
	VolumeTypeIo2 = "io2"
	VolumeTypeGp3 = "gp3"
)

//counterfeiter:generate . VolumeDriver
type VolumeDriver interface {
	Get(ctx context.Context, volumeID string) (Volume, error)
	ListAttached(ctx context.Context, instanceID string) ([]Volume, error)
	CreateFromSnapshot(ctx context.Context, driverConfig VolumeDriverConfig) (Volume, error)
}

// Volume represents an EBS volume. Only io1 and io2 volumes with multi-attach
// enabled carry more than one attachment, at most one per instance.
type Volume struct {
	ID               string
	SizeGiB          int64
	Type             string
	AvailabilityZone string
	State            string
	Iops             int64
	Throughput       int64
	Attachments      []VolumeAttachment
	Tags             collection.Tags
}

// AttachmentTo returns the volume's attachment to instanceID
func (v Volume) AttachmentTo(instanceID string) (VolumeAttachment, bool) {
	for _, attachment := range v.Attachments {
		if attachment.InstanceID == instanceID {
			return attachment, true
		}
	}
	return VolumeAttachment{}, false
}

// DeviceOn returns the device path the volume is attached at on instanceID,
// or "" if it is not attached there
func (v Volume) DeviceOn(instanceID string) string {
	attachment, _ := v.AttachmentTo(instanceID)
	return attachment.Device
}

// VolumeDriverConfig describes a volume restored from a snapshot. Zone, type
// and tags are taken from the source volume.
type VolumeDriverConfig struct {
	SnapshotID     string
	SizeGiB        int64
	SourceVolumeID string
}
