package driver

import (
	"time"

	"ebs-volume-resizer/collection"
	"ebs-volume-resizer/resources"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/rs/zerolog"
)

func tagsFromEC2(ec2Tags []*ec2.Tag) collection.Tags {
	tags := collection.NewTags()
	for _, tag := range ec2Tags {
		tags.Set(aws.StringValue(tag.Key), aws.StringValue(tag.Value))
	}
	return tags
}

func tagsToEC2(tags collection.Tags) []*ec2.Tag {
	ec2Tags := make([]*ec2.Tag, 0, tags.Len())
	for _, tag := range tags.All() {
		ec2Tags = append(ec2Tags, &ec2.Tag{Key: aws.String(tag.Key), Value: aws.String(tag.Value)})
	}
	return ec2Tags
}

func instanceFromEC2(instance *ec2.Instance) resources.Instance {
	tags := tagsFromEC2(instance.Tags)

	name, ok := tags.Get(resources.NameTag)
	if !ok || name == "" {
		name = aws.StringValue(instance.InstanceId)
	}

	state := ""
	if instance.State != nil {
		state = aws.StringValue(instance.State.Name)
	}

	return resources.Instance{
		ID:             aws.StringValue(instance.InstanceId),
		Name:           name,
		State:          state,
		RootDeviceName: aws.StringValue(instance.RootDeviceName),
		Tags:           tags,
	}
}

func volumeFromEC2(volume *ec2.Volume) resources.Volume {
	v := resources.Volume{
		ID:               aws.StringValue(volume.VolumeId),
		SizeGiB:          aws.Int64Value(volume.Size),
		Type:             aws.StringValue(volume.VolumeType),
		AvailabilityZone: aws.StringValue(volume.AvailabilityZone),
		State:            aws.StringValue(volume.State),
		Iops:             aws.Int64Value(volume.Iops),
		Throughput:       aws.Int64Value(volume.Throughput),
		Tags:             tagsFromEC2(volume.Tags),
	}

	for _, attachment := range volume.Attachments {
		v.Attachments = append(v.Attachments, resources.VolumeAttachment{
			InstanceID: aws.StringValue(attachment.InstanceId),
			Device:     aws.StringValue(attachment.Device),
			State:      aws.StringValue(attachment.State),
		})
	}

	return v
}

func snapshotFromEC2(snapshot *ec2.Snapshot) resources.Snapshot {
	return resources.Snapshot{
		ID:       aws.StringValue(snapshot.SnapshotId),
		VolumeID: aws.StringValue(snapshot.VolumeId),
		State:    aws.StringValue(snapshot.State),
		Progress: aws.StringValue(snapshot.Progress),
	}
}

// isNotFound reports whether err carries one of the given EC2 error codes
func isNotFound(err error, codes ...string) bool {
	awsErr, ok := err.(awserr.Error)
	if !ok {
		return false
	}
	for _, code := range codes {
		if awsErr.Code() == code {
			return true
		}
	}
	return false
}

func logCompletion(logger zerolog.Logger, operation string, startTime time.Time) {
	logger.Info().Msgf("completed %s() in %f minutes", operation, time.Since(startTime).Minutes())
}

type instanceStatus struct {
	resources.Instance
}

func (s instanceStatus) Status() string {
	return s.State
}

type volumeStatus struct {
	resources.Volume
}

func (s volumeStatus) Status() string {
	return s.State
}

type attachmentStatus struct {
	resources.Volume
	instanceID string
}

// Status reports the state of the attachment to instanceID, or detached when
// the volume is no longer attached there
func (s attachmentStatus) Status() string {
	attachment, ok := s.AttachmentTo(s.instanceID)
	if !ok {
		return resources.AttachmentStateDetached
	}
	return attachment.State
}

type snapshotStatus struct {
	resources.Snapshot
}

func (s snapshotStatus) Status() string {
	return s.State
}

func (s snapshotStatus) Progress() string {
	return s.Snapshot.Progress
}
