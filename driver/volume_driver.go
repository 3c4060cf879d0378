package driver

import (
	"context"
	"fmt"
	"time"

	"ebs-volume-resizer/config"
	"ebs-volume-resizer/resources"
	"ebs-volume-resizer/uuid"
	"ebs-volume-resizer/waiter"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/rs/zerolog"
)

var _ resources.VolumeDriver = &SDKVolumeDriver{}

// SDKVolumeDriver describes EBS volumes and restores new ones from snapshots
type SDKVolumeDriver struct {
	ec2Client ec2iface.EC2API
	logger    zerolog.Logger
	policy    config.PollPolicy
}

// NewVolumeDriver creates a SDKVolumeDriver polling with policy
func NewVolumeDriver(logger zerolog.Logger, ec2Client ec2iface.EC2API, policy config.PollPolicy) *SDKVolumeDriver {
	return &SDKVolumeDriver{
		ec2Client: ec2Client,
		logger:    logger.With().Str("component", "SDKVolumeDriver").Logger(),
		policy:    policy,
	}
}

func (d *SDKVolumeDriver) Get(ctx context.Context, volumeID string) (resources.Volume, error) {
	output, err := d.ec2Client.DescribeVolumesWithContext(ctx, &ec2.DescribeVolumesInput{
		VolumeIds: aws.StringSlice([]string{volumeID}),
	})
	if err != nil {
		if isNotFound(err, ErrCodeVolumeNotFound, "InvalidVolume.Malformed") {
			return resources.Volume{}, resources.NotFoundError{Kind: "volume", ID: volumeID}
		}
		return resources.Volume{}, fmt.Errorf("describing volume %s: %w", volumeID, err)
	}

	if len(output.Volumes) == 0 {
		return resources.Volume{}, resources.NotFoundError{Kind: "volume", ID: volumeID}
	}

	return volumeFromEC2(output.Volumes[0]), nil
}

// ListAttached returns every volume attached to instanceID
func (d *SDKVolumeDriver) ListAttached(ctx context.Context, instanceID string) ([]resources.Volume, error) {
	volumes := []resources.Volume{}
	err := d.ec2Client.DescribeVolumesPagesWithContext(ctx, &ec2.DescribeVolumesInput{
		Filters: []*ec2.Filter{
			{Name: aws.String("attachment.instance-id"), Values: aws.StringSlice([]string{instanceID})},
		},
	}, func(page *ec2.DescribeVolumesOutput, _ bool) bool {
		for _, volume := range page.Volumes {
			volumes = append(volumes, volumeFromEC2(volume))
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("listing volumes attached to instance %s: %w", instanceID, err)
	}

	return volumes, nil
}

// CreateFromSnapshot restores driverConfig.SnapshotID into a new volume in the
// source volume's zone with its type, performance settings and tags, less
// reserved aws: tags. The
// returned Volume carries the new ID whenever the volume was created, even if
// a later step failed.
func (d *SDKVolumeDriver) CreateFromSnapshot(ctx context.Context, driverConfig resources.VolumeDriverConfig) (resources.Volume, error) {
	defer logCompletion(d.logger, "CreateFromSnapshot", time.Now())

	source, err := d.Get(ctx, driverConfig.SourceVolumeID)
	if err != nil {
		return resources.Volume{}, fmt.Errorf("reading source volume %s: %w", driverConfig.SourceVolumeID, err)
	}

	input := &ec2.CreateVolumeInput{
		SnapshotId:       aws.String(driverConfig.SnapshotID),
		Size:             aws.Int64(driverConfig.SizeGiB),
		AvailabilityZone: aws.String(source.AvailabilityZone),
		VolumeType:       aws.String(source.Type),
		ClientToken:      aws.String(uuid.New("")),
	}

	switch source.Type {
	case resources.VolumeTypeIo1, resources.VolumeTypeIo2:
		input.Iops = aws.Int64(source.Iops)
	case resources.VolumeTypeGp3:
		if source.Iops > 0 {
			input.Iops = aws.Int64(source.Iops)
		}
		if source.Throughput > 0 {
			input.Throughput = aws.Int64(source.Throughput)
		}
	}

	d.logger.Info().Msgf("creating %d GiB %s volume in %s from snapshot %s", driverConfig.SizeGiB, source.Type, source.AvailabilityZone, driverConfig.SnapshotID)
	created, err := d.ec2Client.CreateVolumeWithContext(ctx, input)
	if err != nil {
		return resources.Volume{}, fmt.Errorf("creating volume from snapshot %s: %w", driverConfig.SnapshotID, err)
	}

	volume := volumeFromEC2(created)
	d.logger.Info().Msgf("created volume %s", volume.ID)

	tags := resources.PropagatableTags(source.Tags)
	if tags.Len() > 0 {
		_, err = d.ec2Client.CreateTagsWithContext(ctx, &ec2.CreateTagsInput{
			Resources: aws.StringSlice([]string{volume.ID}),
			Tags:      tagsToEC2(tags),
		})
		if err != nil {
			return volume, fmt.Errorf("tagging volume %s: %w", volume.ID, err)
		}
	}
	volume.Tags = tags

	fetcher := func(ctx context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
		v, err := d.Get(ctx, resource.ID())
		if err != nil {
			return nil, err
		}
		return volumeStatus{v}, nil
	}

	info, err := waiter.WaitForStatus(ctx, fetcher, waiter.WaiterConfig{
		Resource:        waiter.ID(volume.ID),
		DesiredStatus:   resources.VolumeStateAvailable,
		FailureStatuses: []string{resources.VolumeStateError},
		PollInterval:    d.policy.Interval,
		PollTimeout:     d.policy.Timeout,
		PollRetries:     d.policy.Retries,
		Logger:          d.logger,
	})
	if err != nil {
		return volume, fmt.Errorf("waiting for volume %s to become available: %w", volume.ID, err)
	}

	return info.(volumeStatus).Volume, nil
}
