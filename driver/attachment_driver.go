package driver

import (
	"context"
	"fmt"
	"time"

	"ebs-volume-resizer/config"
	"ebs-volume-resizer/resources"
	"ebs-volume-resizer/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/rs/zerolog"
)

var _ resources.AttachmentDriver = &SDKAttachmentDriver{}

// SDKAttachmentDriver moves volumes on and off instance device paths
type SDKAttachmentDriver struct {
	ec2Client ec2iface.EC2API
	volumes   *SDKVolumeDriver
	logger    zerolog.Logger
	policy    config.PollPolicy
}

func NewAttachmentDriver(logger zerolog.Logger, ec2Client ec2iface.EC2API, policy config.PollPolicy) *SDKAttachmentDriver {
	return &SDKAttachmentDriver{
		ec2Client: ec2Client,
		volumes:   NewVolumeDriver(logger, ec2Client, policy),
		logger:    logger.With().Str("component", "SDKAttachmentDriver").Logger(),
		policy:    policy,
	}
}

// Detach requests the detach and waits until the volume has no attachment
func (d *SDKAttachmentDriver) Detach(ctx context.Context, driverConfig resources.AttachmentDriverConfig) error {
	defer logCompletion(d.logger, "Detach", time.Now())

	d.logger.Info().Msgf("detaching volume %s from %s at %s", driverConfig.VolumeID, driverConfig.InstanceID, driverConfig.Device)
	_, err := d.ec2Client.DetachVolumeWithContext(ctx, &ec2.DetachVolumeInput{
		VolumeId:   aws.String(driverConfig.VolumeID),
		InstanceId: aws.String(driverConfig.InstanceID),
		Device:     aws.String(driverConfig.Device),
	})
	if err != nil {
		return fmt.Errorf("detaching volume %s: %w", driverConfig.VolumeID, err)
	}

	_, err = d.waitForAttachment(ctx, driverConfig, resources.AttachmentStateDetached)
	if err != nil {
		return fmt.Errorf("waiting for volume %s to detach: %w", driverConfig.VolumeID, err)
	}

	return nil
}

// Attach requests the attach and waits until the attachment is attached
func (d *SDKAttachmentDriver) Attach(ctx context.Context, driverConfig resources.AttachmentDriverConfig) (resources.VolumeAttachment, error) {
	defer logCompletion(d.logger, "Attach", time.Now())

	d.logger.Info().Msgf("attaching volume %s to %s at %s", driverConfig.VolumeID, driverConfig.InstanceID, driverConfig.Device)
	_, err := d.ec2Client.AttachVolumeWithContext(ctx, &ec2.AttachVolumeInput{
		VolumeId:   aws.String(driverConfig.VolumeID),
		InstanceId: aws.String(driverConfig.InstanceID),
		Device:     aws.String(driverConfig.Device),
	})
	if err != nil {
		return resources.VolumeAttachment{}, fmt.Errorf("attaching volume %s: %w", driverConfig.VolumeID, err)
	}

	volume, err := d.waitForAttachment(ctx, driverConfig, resources.AttachmentStateAttached)
	if err != nil {
		return resources.VolumeAttachment{}, fmt.Errorf("waiting for volume %s to attach: %w", driverConfig.VolumeID, err)
	}

	attachment, _ := volume.AttachmentTo(driverConfig.InstanceID)
	return attachment, nil
}

// waitForAttachment polls the volume's attachment to driverConfig.InstanceID,
// ignoring any other instance it is multi-attached to
func (d *SDKAttachmentDriver) waitForAttachment(ctx context.Context, driverConfig resources.AttachmentDriverConfig, state string) (resources.Volume, error) {
	fetcher := func(ctx context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
		volume, err := d.volumes.Get(ctx, resource.ID())
		if err != nil {
			return nil, err
		}
		return attachmentStatus{Volume: volume, instanceID: driverConfig.InstanceID}, nil
	}

	info, err := waiter.WaitForStatus(ctx, fetcher, waiter.WaiterConfig{
		Resource:      waiter.ID(driverConfig.VolumeID),
		DesiredStatus: state,
		PollInterval:  d.policy.Interval,
		PollTimeout:   d.policy.Timeout,
		PollRetries:   d.policy.Retries,
		Logger:        d.logger,
	})
	if err != nil {
		return resources.Volume{}, err
	}

	return info.(attachmentStatus).Volume, nil
}
