package resources

import (
	"context"
	"fmt"

	"ebs-volume-resizer/collection"
)

// Snapshot states
const (
	SnapshotStatePending   = "pending"
	SnapshotStateCompleted = "completed"
	SnapshotStateError     = "error"
)

const (
	NameTag = "Name"
	// SourceNameTag holds the instance Name tag on a snapshot, so the
	// snapshot's own Name stays unambiguous
	SourceNameTag = "ec2Name"
)

// SnapshotDriver abstracts the creation of a snapshot in AWS
//
//counterfeiter:generate . SnapshotDriver
type SnapshotDriver interface {
	Create(ctx context.Context, driverConfig SnapshotDriverConfig) (Snapshot, error)
}

// Snapshot represents an EBS snapshot used once as a restore source
type Snapshot struct {
	ID       string
	VolumeID string
	State    string
	Progress string
}

// SnapshotDriverConfig contains the source volume and the instance it belongs to
type SnapshotDriverConfig struct {
	VolumeID     string
	InstanceID   string
	InstanceName string
	InstanceTags collection.Tags
}

// SnapshotName is the Name tag given to a snapshot of volumeID
func SnapshotName(volumeID string) string {
	return "snap-" + volumeID
}

// Description records which instance the snapshot was taken from
func (c SnapshotDriverConfig) Description() string {
	return fmt.Sprintf("ebs-volume-resizer snapshot of %s from %s (%s)", c.VolumeID, c.InstanceName, c.InstanceID)
}

// Tags derives the snapshot tags from the instance tags: every instance tag
// except reserved aws: tags is copied, Name moves to ec2Name, and Name becomes
// snap-<volumeID>. Instance tags that would push the snapshot past the EC2 tag
// limit are left off, see DroppedTags.
func (c SnapshotDriverConfig) Tags() collection.Tags {
	tags, _ := c.splitTags()
	return tags
}

// DroppedTags lists the instance tags Tags leaves off to stay within the limit
func (c SnapshotDriverConfig) DroppedTags() []collection.Tag {
	_, dropped := c.splitTags()
	return dropped
}

func (c SnapshotDriverConfig) splitTags() (collection.Tags, []collection.Tag) {
	inherited := PropagatableTags(c.InstanceTags).Rename(NameTag, SourceNameTag)

	tags := collection.NewTags(collection.Tag{Key: NameTag, Value: SnapshotName(c.VolumeID)})
	if sourceName, ok := inherited.Get(SourceNameTag); ok {
		tags.Set(SourceNameTag, sourceName)
	}

	kept, dropped := inherited.Without(SourceNameTag).Split(MaxTagsPerResource - tags.Len())
	for _, tag := range kept.All() {
		tags.Set(tag.Key, tag.Value)
	}

	return tags, dropped
}
