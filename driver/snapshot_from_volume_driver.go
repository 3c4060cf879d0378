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

var _ resources.SnapshotDriver = &SDKSnapshotFromVolumeDriver{}

// SDKSnapshotFromVolumeDriver creates a tagged snapshot of an EBS volume
type SDKSnapshotFromVolumeDriver struct {
	ec2Client ec2iface.EC2API
	logger    zerolog.Logger
	policy    config.PollPolicy
}

// NewSnapshotFromVolumeDriver creates a SDKSnapshotFromVolumeDriver for creating snapshots in EC2
func NewSnapshotFromVolumeDriver(logger zerolog.Logger, ec2Client ec2iface.EC2API, policy config.PollPolicy) *SDKSnapshotFromVolumeDriver {
	return &SDKSnapshotFromVolumeDriver{
		ec2Client: ec2Client,
		logger:    logger.With().Str("component", "SDKSnapshotFromVolumeDriver").Logger(),
		policy:    policy,
	}
}

// Create snapshots driverConfig.VolumeID, tags it from the instance and waits
// for it to complete. The returned Snapshot carries the new ID whenever the
// snapshot was created, even if a later step failed.
func (d *SDKSnapshotFromVolumeDriver) Create(ctx context.Context, driverConfig resources.SnapshotDriverConfig) (resources.Snapshot, error) {
	defer logCompletion(d.logger, "Create", time.Now())

	d.logger.Info().Msgf("creating snapshot of volume %s", driverConfig.VolumeID)
	created, err := d.ec2Client.CreateSnapshotWithContext(ctx, &ec2.CreateSnapshotInput{
		VolumeId:    aws.String(driverConfig.VolumeID),
		Description: aws.String(driverConfig.Description()),
	})
	if err != nil {
		return resources.Snapshot{}, fmt.Errorf("creating snapshot from volume %s: %w", driverConfig.VolumeID, err)
	}

	snapshot := snapshotFromEC2(created)
	d.logger.Info().Msgf("created snapshot %s", snapshot.ID)

	for _, tag := range driverConfig.DroppedTags() {
		d.logger.Warn().Msgf("not copying tag %s=%s to snapshot %s, it would exceed %d tags", tag.Key, tag.Value, snapshot.ID, resources.MaxTagsPerResource)
	}

	_, err = d.ec2Client.CreateTagsWithContext(ctx, &ec2.CreateTagsInput{
		Resources: aws.StringSlice([]string{snapshot.ID}),
		Tags:      tagsToEC2(driverConfig.Tags()),
	})
	if err != nil {
		return snapshot, fmt.Errorf("tagging snapshot %s: %w", snapshot.ID, err)
	}

	fetcher := func(ctx context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
		output, err := d.ec2Client.DescribeSnapshotsWithContext(ctx, &ec2.DescribeSnapshotsInput{
			SnapshotIds: aws.StringSlice([]string{resource.ID()}),
		})
		if err != nil {
			return nil, fmt.Errorf("describing snapshot %s: %w", resource.ID(), err)
		}
		if len(output.Snapshots) == 0 {
			return nil, resources.NotFoundError{Kind: "snapshot", ID: resource.ID()}
		}
		return snapshotStatus{snapshotFromEC2(output.Snapshots[0])}, nil
	}

	waitStartTime := time.Now()
	info, err := waiter.WaitForStatus(ctx, fetcher, waiter.WaiterConfig{
		Resource:        waiter.ID(snapshot.ID),
		DesiredStatus:   resources.SnapshotStateCompleted,
		FailureStatuses: []string{resources.SnapshotStateError},
		PollInterval:    d.policy.Interval,
		PollTimeout:     d.policy.Timeout,
		PollRetries:     d.policy.Retries,
		Logger:          d.logger,
	})
	if err != nil {
		return snapshot, fmt.Errorf("waiting for snapshot %s to complete: %w", snapshot.ID, err)
	}

	d.logger.Info().Msgf("waited on snapshot %s for %f minutes", snapshot.ID, time.Since(waitStartTime).Minutes())

	return info.(snapshotStatus).Snapshot, nil
}
