package driverset

import (
	"ebs-volume-resizer/config"
	"ebs-volume-resizer/driver"
	"ebs-volume-resizer/resources"

	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/rs/zerolog"
)

// You only need **one** of these per package!
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// ResizeDriverSet holds every driver a volume resize needs, all talking to a
// single region
//
//counterfeiter:generate . ResizeDriverSet
type ResizeDriverSet interface {
	InstanceDriver() resources.InstanceDriver
	VolumeDriver() resources.VolumeDriver
	SnapshotDriver() resources.SnapshotDriver
	AttachmentDriver() resources.AttachmentDriver
}

type resizeDriverSet struct {
	instanceDriver   *driver.SDKInstanceDriver
	volumeDriver     *driver.SDKVolumeDriver
	snapshotDriver   *driver.SDKSnapshotFromVolumeDriver
	attachmentDriver *driver.SDKAttachmentDriver
}

// NewResizeDriverSet wires the SDK drivers to ec2Client, each polling with its
// category of polling
func NewResizeDriverSet(logger zerolog.Logger, ec2Client ec2iface.EC2API, polling config.Polling) ResizeDriverSet {
	return &resizeDriverSet{
		instanceDriver:   driver.NewInstanceDriver(logger, ec2Client, polling.Instance()),
		volumeDriver:     driver.NewVolumeDriver(logger, ec2Client, polling.Volume()),
		snapshotDriver:   driver.NewSnapshotFromVolumeDriver(logger, ec2Client, polling.Snapshot()),
		attachmentDriver: driver.NewAttachmentDriver(logger, ec2Client, polling.Attachment()),
	}
}

func (s *resizeDriverSet) InstanceDriver() resources.InstanceDriver {
	return s.instanceDriver
}

func (s *resizeDriverSet) VolumeDriver() resources.VolumeDriver {
	return s.volumeDriver
}

func (s *resizeDriverSet) SnapshotDriver() resources.SnapshotDriver {
	return s.snapshotDriver
}

func (s *resizeDriverSet) AttachmentDriver() resources.AttachmentDriver {
	return s.attachmentDriver
}
