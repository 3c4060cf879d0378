package test_helpers

import (
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/awsutil"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
)

// FakeEC2 is an in-memory EC2 control plane. Transitional states advance one
// step each time the resource is described, so callers that poll observe the
// same sequence of states the real API reports.
//
// Calling a method FakeEC2 does not implement panics through the embedded nil
// interface.
type FakeEC2 struct {
	ec2iface.EC2API

	mu sync.Mutex

	instances         map[string]*ec2.Instance
	shutdownBehaviors map[string]string
	volumes           map[string]*ec2.Volume
	snapshots         map[string]*ec2.Snapshot
	clientTokens      map[string]string
	snapshotSteps     map[string]int

	failures         map[string][]error
	failSnapshots    bool
	failVolumes      bool
	tagNotFoundCount int
	nextID           int

	calls              []string
	createVolumeInputs []*ec2.CreateVolumeInput
	createTagsInputs   []*ec2.CreateTagsInput
}

var _ ec2iface.EC2API = &FakeEC2{}

// maxTags is the EC2 per-resource tag limit
const maxTags = 50

func NewFakeEC2() *FakeEC2 {
	return &FakeEC2{
		instances:         map[string]*ec2.Instance{},
		shutdownBehaviors: map[string]string{},
		volumes:           map[string]*ec2.Volume{},
		snapshots:         map[string]*ec2.Snapshot{},
		clientTokens:      map[string]string{},
		snapshotSteps:     map[string]int{},
		failures:          map[string][]error{},
	}
}

// AddInstance registers an instance in the given state. tags may include Name.
func (f *FakeEC2) AddInstance(id, state, rootDevice string, tags map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.instances[id] = &ec2.Instance{
		InstanceId:     aws.String(id),
		State:          &ec2.InstanceState{Name: aws.String(state)},
		RootDeviceName: aws.String(rootDevice),
		Tags:           toEC2Tags(tags),
		Placement:      &ec2.Placement{AvailabilityZone: aws.String("us-east-1a")},
	}
	f.shutdownBehaviors[id] = ec2.ShutdownBehaviorStop
}

// AddVolume registers a volume. An empty instanceID leaves it available.
func (f *FakeEC2) AddVolume(volume *ec2.Volume, instanceID, device string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := awsutil.CopyOf(volume).(*ec2.Volume)
	if v.State == nil {
		v.State = aws.String(ec2.VolumeStateAvailable)
	}
	if instanceID != "" {
		v.State = aws.String(ec2.VolumeStateInUse)
		v.Attachments = []*ec2.VolumeAttachment{{
			InstanceId: aws.String(instanceID),
			VolumeId:   v.VolumeId,
			Device:     aws.String(device),
			State:      aws.String(ec2.VolumeAttachmentStateAttached),
		}}
	}
	f.volumes[*v.VolumeId] = v
}

func (f *FakeEC2) SetShutdownBehavior(instanceID, behavior string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdownBehaviors[instanceID] = behavior
}

// SetInstanceState forces an instance into state without recording a call
func (f *FakeEC2) SetInstanceState(instanceID, state string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.instances[instanceID].State.Name = aws.String(state)
}

// FailNext queues err to be returned by the next call to op
func (f *FakeEC2) FailNext(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[op] = append(f.failures[op], err)
}

// FailSnapshots makes every new snapshot end in the error state
func (f *FakeEC2) FailSnapshots() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failSnapshots = true
}

// FailVolumes makes every new volume end in the error state
func (f *FakeEC2) FailVolumes() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failVolumes = true
}

// DelayTagVisibility makes the next n CreateTags calls fail with the NotFound
// code EC2 returns before a new resource is visible
func (f *FakeEC2) DelayTagVisibility(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tagNotFoundCount = n
}

// Calls returns the names of every operation invoked, in order
func (f *FakeEC2) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.calls...)
}

// MutatingCalls filters Calls down to operations that change remote state
func (f *FakeEC2) MutatingCalls() []string {
	mutating := []string{}
	for _, call := range f.Calls() {
		switch call {
		case "StopInstances", "StartInstances", "CreateSnapshot", "CreateVolume",
			"CreateTags", "DetachVolume", "AttachVolume":
			mutating = append(mutating, call)
		}
	}
	return mutating
}

func (f *FakeEC2) CreateVolumeInputs() []*ec2.CreateVolumeInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ec2.CreateVolumeInput{}, f.createVolumeInputs...)
}

func (f *FakeEC2) CreateTagsInputs() []*ec2.CreateTagsInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*ec2.CreateTagsInput{}, f.createTagsInputs...)
}

// Instance returns a copy of the stored instance without advancing its state
func (f *FakeEC2) Instance(id string) *ec2.Instance {
	f.mu.Lock()
	defer f.mu.Unlock()
	return awsutil.CopyOf(f.instances[id]).(*ec2.Instance)
}

// Volume returns a copy of the stored volume without advancing its state
func (f *FakeEC2) Volume(id string) *ec2.Volume {
	f.mu.Lock()
	defer f.mu.Unlock()
	return awsutil.CopyOf(f.volumes[id]).(*ec2.Volume)
}

// Snapshot returns a copy of the stored snapshot without advancing its state
func (f *FakeEC2) Snapshot(id string) *ec2.Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return awsutil.CopyOf(f.snapshots[id]).(*ec2.Snapshot)
}

func (f *FakeEC2) record(op string) error {
	f.calls = append(f.calls, op)

	queued := f.failures[op]
	if len(queued) == 0 {
		return nil
	}
	f.failures[op] = queued[1:]
	return queued[0]
}

func (f *FakeEC2) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%08x", prefix, f.nextID)
}

func (f *FakeEC2) DescribeInstancesWithContext(_ aws.Context, input *ec2.DescribeInstancesInput, _ ...request.Option) (*ec2.DescribeInstancesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("DescribeInstances"); err != nil {
		return nil, err
	}

	var matched []*ec2.Instance
	if len(input.InstanceIds) > 0 {
		for _, id := range aws.StringValueSlice(input.InstanceIds) {
			instance, ok := f.instances[id]
			if !ok {
				return nil, awserr.New("InvalidInstanceID.NotFound", fmt.Sprintf("The instance ID '%s' does not exist", id), nil)
			}
			matched = append(matched, instance)
		}
	} else {
		for _, id := range sortedKeys(f.instances) {
			matched = append(matched, f.instances[id])
		}
	}

	output := &ec2.DescribeInstancesOutput{}
	for _, instance := range matched {
		if !instanceMatches(instance, input.Filters) {
			continue
		}

		output.Reservations = append(output.Reservations, &ec2.Reservation{
			Instances: []*ec2.Instance{awsutil.CopyOf(instance).(*ec2.Instance)},
		})
		advanceInstance(instance)
	}

	return output, nil
}

// DescribeInstancesPagesWithContext serves every match as a single page
func (f *FakeEC2) DescribeInstancesPagesWithContext(ctx aws.Context, input *ec2.DescribeInstancesInput, fn func(*ec2.DescribeInstancesOutput, bool) bool, opts ...request.Option) error {
	output, err := f.DescribeInstancesWithContext(ctx, input, opts...)
	if err != nil {
		return err
	}
	fn(output, true)
	return nil
}

func (f *FakeEC2) DescribeInstanceAttributeWithContext(_ aws.Context, input *ec2.DescribeInstanceAttributeInput, _ ...request.Option) (*ec2.DescribeInstanceAttributeOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("DescribeInstanceAttribute"); err != nil {
		return nil, err
	}

	id := aws.StringValue(input.InstanceId)
	if _, ok := f.instances[id]; !ok {
		return nil, awserr.New("InvalidInstanceID.NotFound", fmt.Sprintf("The instance ID '%s' does not exist", id), nil)
	}

	if aws.StringValue(input.Attribute) != ec2.InstanceAttributeNameInstanceInitiatedShutdownBehavior {
		return nil, awserr.New("InvalidParameterValue", "unsupported attribute", nil)
	}

	return &ec2.DescribeInstanceAttributeOutput{
		InstanceId:                        aws.String(id),
		InstanceInitiatedShutdownBehavior: &ec2.AttributeValue{Value: aws.String(f.shutdownBehaviors[id])},
	}, nil
}

func (f *FakeEC2) StopInstancesWithContext(_ aws.Context, input *ec2.StopInstancesInput, _ ...request.Option) (*ec2.StopInstancesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("StopInstances"); err != nil {
		return nil, err
	}

	output := &ec2.StopInstancesOutput{}
	for _, id := range aws.StringValueSlice(input.InstanceIds) {
		instance, ok := f.instances[id]
		if !ok {
			return nil, awserr.New("InvalidInstanceID.NotFound", fmt.Sprintf("The instance ID '%s' does not exist", id), nil)
		}

		previous := aws.StringValue(instance.State.Name)
		if previous == ec2.InstanceStateNameRunning {
			instance.State.Name = aws.String(ec2.InstanceStateNameStopping)
		}
		output.StoppingInstances = append(output.StoppingInstances, &ec2.InstanceStateChange{
			InstanceId:    aws.String(id),
			PreviousState: &ec2.InstanceState{Name: aws.String(previous)},
			CurrentState:  &ec2.InstanceState{Name: instance.State.Name},
		})
	}

	return output, nil
}

func (f *FakeEC2) StartInstancesWithContext(_ aws.Context, input *ec2.StartInstancesInput, _ ...request.Option) (*ec2.StartInstancesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("StartInstances"); err != nil {
		return nil, err
	}

	output := &ec2.StartInstancesOutput{}
	for _, id := range aws.StringValueSlice(input.InstanceIds) {
		instance, ok := f.instances[id]
		if !ok {
			return nil, awserr.New("InvalidInstanceID.NotFound", fmt.Sprintf("The instance ID '%s' does not exist", id), nil)
		}

		previous := aws.StringValue(instance.State.Name)
		if previous == ec2.InstanceStateNameStopped {
			instance.State.Name = aws.String(ec2.InstanceStateNamePending)
		}
		output.StartingInstances = append(output.StartingInstances, &ec2.InstanceStateChange{
			InstanceId:    aws.String(id),
			PreviousState: &ec2.InstanceState{Name: aws.String(previous)},
			CurrentState:  &ec2.InstanceState{Name: instance.State.Name},
		})
	}

	return output, nil
}

func (f *FakeEC2) DescribeVolumesWithContext(_ aws.Context, input *ec2.DescribeVolumesInput, _ ...request.Option) (*ec2.DescribeVolumesOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("DescribeVolumes"); err != nil {
		return nil, err
	}

	var matched []*ec2.Volume
	if len(input.VolumeIds) > 0 {
		for _, id := range aws.StringValueSlice(input.VolumeIds) {
			volume, ok := f.volumes[id]
			if !ok {
				return nil, awserr.New("InvalidVolume.NotFound", fmt.Sprintf("The volume '%s' does not exist.", id), nil)
			}
			matched = append(matched, volume)
		}
	} else {
		for _, id := range sortedKeys(f.volumes) {
			matched = append(matched, f.volumes[id])
		}
	}

	output := &ec2.DescribeVolumesOutput{}
	for _, volume := range matched {
		if !volumeMatches(volume, input.Filters) {
			continue
		}

		output.Volumes = append(output.Volumes, awsutil.CopyOf(volume).(*ec2.Volume))
		f.advanceVolume(volume)
	}

	return output, nil
}

// DescribeVolumesPagesWithContext serves every match as a single page
func (f *FakeEC2) DescribeVolumesPagesWithContext(ctx aws.Context, input *ec2.DescribeVolumesInput, fn func(*ec2.DescribeVolumesOutput, bool) bool, opts ...request.Option) error {
	output, err := f.DescribeVolumesWithContext(ctx, input, opts...)
	if err != nil {
		return err
	}
	fn(output, true)
	return nil
}

func (f *FakeEC2) CreateVolumeWithContext(_ aws.Context, input *ec2.CreateVolumeInput, _ ...request.Option) (*ec2.Volume, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("CreateVolume"); err != nil {
		return nil, err
	}
	f.createVolumeInputs = append(f.createVolumeInputs, awsutil.CopyOf(input).(*ec2.CreateVolumeInput))

	if token := aws.StringValue(input.ClientToken); token != "" {
		if existing, ok := f.clientTokens[token]; ok {
			return awsutil.CopyOf(f.volumes[existing]).(*ec2.Volume), nil
		}
	}

	snapshotID := aws.StringValue(input.SnapshotId)
	snapshot, ok := f.snapshots[snapshotID]
	if !ok {
		return nil, awserr.New("InvalidSnapshot.NotFound", fmt.Sprintf("The snapshot '%s' does not exist.", snapshotID), nil)
	}
	if aws.StringValue(snapshot.State) != ec2.SnapshotStateCompleted {
		return nil, awserr.New("IncorrectState", fmt.Sprintf("Snapshot '%s' is not 'completed'.", snapshotID), nil)
	}
	if aws.Int64Value(input.Size) < aws.Int64Value(snapshot.VolumeSize) {
		return nil, awserr.New("InvalidParameterValue", "Volume of size smaller than the snapshot size is not allowed.", nil)
	}

	volumeType := aws.StringValue(input.VolumeType)
	if (volumeType == ec2.VolumeTypeIo1 || volumeType == ec2.VolumeTypeIo2) && input.Iops == nil {
		return nil, awserr.New("InvalidParameterCombination", "The parameter iops must be specified for io1 and io2 volumes.", nil)
	}

	volume := &ec2.Volume{
		VolumeId:         aws.String(f.newID("vol")),
		Size:             input.Size,
		SnapshotId:       input.SnapshotId,
		AvailabilityZone: input.AvailabilityZone,
		VolumeType:       input.VolumeType,
		Iops:             input.Iops,
		Throughput:       input.Throughput,
		State:            aws.String(ec2.VolumeStateCreating),
	}
	f.volumes[*volume.VolumeId] = volume
	if token := aws.StringValue(input.ClientToken); token != "" {
		f.clientTokens[token] = *volume.VolumeId
	}

	return awsutil.CopyOf(volume).(*ec2.Volume), nil
}

func (f *FakeEC2) CreateSnapshotWithContext(_ aws.Context, input *ec2.CreateSnapshotInput, _ ...request.Option) (*ec2.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("CreateSnapshot"); err != nil {
		return nil, err
	}

	volumeID := aws.StringValue(input.VolumeId)
	volume, ok := f.volumes[volumeID]
	if !ok {
		return nil, awserr.New("InvalidVolume.NotFound", fmt.Sprintf("The volume '%s' does not exist.", volumeID), nil)
	}

	snapshot := &ec2.Snapshot{
		SnapshotId:  aws.String(f.newID("snap")),
		VolumeId:    aws.String(volumeID),
		VolumeSize:  volume.Size,
		Description: input.Description,
		State:       aws.String(ec2.SnapshotStatePending),
		Progress:    aws.String("0%"),
	}
	f.snapshots[*snapshot.SnapshotId] = snapshot

	return awsutil.CopyOf(snapshot).(*ec2.Snapshot), nil
}

func (f *FakeEC2) DescribeSnapshotsWithContext(_ aws.Context, input *ec2.DescribeSnapshotsInput, _ ...request.Option) (*ec2.DescribeSnapshotsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("DescribeSnapshots"); err != nil {
		return nil, err
	}

	output := &ec2.DescribeSnapshotsOutput{}
	for _, id := range aws.StringValueSlice(input.SnapshotIds) {
		snapshot, ok := f.snapshots[id]
		if !ok {
			return nil, awserr.New("InvalidSnapshot.NotFound", fmt.Sprintf("The snapshot '%s' does not exist.", id), nil)
		}

		output.Snapshots = append(output.Snapshots, awsutil.CopyOf(snapshot).(*ec2.Snapshot))
		f.advanceSnapshot(snapshot)
	}

	return output, nil
}

func (f *FakeEC2) CreateTagsWithContext(_ aws.Context, input *ec2.CreateTagsInput, _ ...request.Option) (*ec2.CreateTagsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("CreateTags"); err != nil {
		return nil, err
	}
	f.createTagsInputs = append(f.createTagsInputs, awsutil.CopyOf(input).(*ec2.CreateTagsInput))

	for _, id := range aws.StringValueSlice(input.Resources) {
		var target *[]*ec2.Tag
		var notFound string
		if snapshot, ok := f.snapshots[id]; ok {
			target, notFound = &snapshot.Tags, "InvalidSnapshot.NotFound"
		} else if volume, ok := f.volumes[id]; ok {
			target, notFound = &volume.Tags, "InvalidVolume.NotFound"
		} else if instance, ok := f.instances[id]; ok {
			target = &instance.Tags
		} else {
			return nil, awserr.New("InvalidID", fmt.Sprintf("The ID '%s' is not valid", id), nil)
		}

		if f.tagNotFoundCount > 0 && notFound != "" {
			f.tagNotFoundCount--
			return nil, awserr.New(notFound, fmt.Sprintf("The resource '%s' does not exist.", id), nil)
		}

		for _, tag := range input.Tags {
			if strings.HasPrefix(aws.StringValue(tag.Key), "aws:") {
				return nil, awserr.New("InvalidParameterValue", "Tag keys starting with 'aws:' are reserved for internal use", nil)
			}
		}

		merged := mergeTags(*target, input.Tags)
		if len(merged) > maxTags {
			return nil, awserr.New("TagLimitExceeded", fmt.Sprintf("The maximum number of tags (%d) for resource '%s' has been reached.", maxTags, id), nil)
		}
		*target = merged
	}

	return &ec2.CreateTagsOutput{}, nil
}

func (f *FakeEC2) DetachVolumeWithContext(_ aws.Context, input *ec2.DetachVolumeInput, _ ...request.Option) (*ec2.VolumeAttachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("DetachVolume"); err != nil {
		return nil, err
	}

	volumeID := aws.StringValue(input.VolumeId)
	volume, ok := f.volumes[volumeID]
	if !ok {
		return nil, awserr.New("InvalidVolume.NotFound", fmt.Sprintf("The volume '%s' does not exist.", volumeID), nil)
	}
	if len(volume.Attachments) == 0 {
		return nil, awserr.New("IncorrectState", fmt.Sprintf("Volume '%s' is in the 'available' state.", volumeID), nil)
	}

	attachment := volume.Attachments[0]
	if instance, ok := f.instances[aws.StringValue(attachment.InstanceId)]; ok {
		isRoot := aws.StringValue(instance.RootDeviceName) == aws.StringValue(attachment.Device)
		if isRoot && aws.StringValue(instance.State.Name) != ec2.InstanceStateNameStopped {
			return nil, awserr.New("IncorrectState", fmt.Sprintf("Unable to detach root volume '%s' from instance '%s'", volumeID, *instance.InstanceId), nil)
		}
	}

	attachment.State = aws.String(ec2.VolumeAttachmentStateDetaching)
	return awsutil.CopyOf(attachment).(*ec2.VolumeAttachment), nil
}

func (f *FakeEC2) AttachVolumeWithContext(_ aws.Context, input *ec2.AttachVolumeInput, _ ...request.Option) (*ec2.VolumeAttachment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.record("AttachVolume"); err != nil {
		return nil, err
	}

	volumeID := aws.StringValue(input.VolumeId)
	volume, ok := f.volumes[volumeID]
	if !ok {
		return nil, awserr.New("InvalidVolume.NotFound", fmt.Sprintf("The volume '%s' does not exist.", volumeID), nil)
	}
	instanceID := aws.StringValue(input.InstanceId)
	instance, ok := f.instances[instanceID]
	if !ok {
		return nil, awserr.New("InvalidInstanceID.NotFound", fmt.Sprintf("The instance ID '%s' does not exist", instanceID), nil)
	}
	if aws.StringValue(volume.State) != ec2.VolumeStateAvailable {
		return nil, awserr.New("IncorrectState", fmt.Sprintf("vol '%s' is not 'available'.", volumeID), nil)
	}
	if aws.StringValue(volume.AvailabilityZone) != aws.StringValue(instance.Placement.AvailabilityZone) {
		return nil, awserr.New("InvalidVolume.ZoneMismatch", "The volume is not in the same availability zone as the instance.", nil)
	}

	device := aws.StringValue(input.Device)
	for _, other := range f.volumes {
		for _, a := range other.Attachments {
			if aws.StringValue(a.InstanceId) == instanceID && aws.StringValue(a.Device) == device {
				return nil, awserr.New("InvalidParameterValue", fmt.Sprintf("Attachment point %s is already in use", device), nil)
			}
		}
	}

	attachment := &ec2.VolumeAttachment{
		InstanceId: aws.String(instanceID),
		VolumeId:   aws.String(volumeID),
		Device:     aws.String(device),
		State:      aws.String(ec2.VolumeAttachmentStateAttaching),
	}
	volume.Attachments = []*ec2.VolumeAttachment{attachment}
	volume.State = aws.String(ec2.VolumeStateInUse)

	return awsutil.CopyOf(attachment).(*ec2.VolumeAttachment), nil
}

func advanceInstance(instance *ec2.Instance) {
	switch aws.StringValue(instance.State.Name) {
	case ec2.InstanceStateNameStopping:
		instance.State.Name = aws.String(ec2.InstanceStateNameStopped)
	case ec2.InstanceStateNamePending:
		instance.State.Name = aws.String(ec2.InstanceStateNameRunning)
	}
}

func (f *FakeEC2) advanceVolume(volume *ec2.Volume) {
	if aws.StringValue(volume.State) == ec2.VolumeStateCreating {
		if f.failVolumes {
			volume.State = aws.String(ec2.VolumeStateError)
		} else {
			volume.State = aws.String(ec2.VolumeStateAvailable)
		}
	}

	if len(volume.Attachments) == 0 {
		return
	}

	switch aws.StringValue(volume.Attachments[0].State) {
	case ec2.VolumeAttachmentStateDetaching:
		volume.Attachments = nil
		volume.State = aws.String(ec2.VolumeStateAvailable)
	case ec2.VolumeAttachmentStateAttaching:
		volume.Attachments[0].State = aws.String(ec2.VolumeAttachmentStateAttached)
	}
}

// Snapshots report 0%, then 50%, then complete.
func (f *FakeEC2) advanceSnapshot(snapshot *ec2.Snapshot) {
	if aws.StringValue(snapshot.State) != ec2.SnapshotStatePending {
		return
	}

	id := aws.StringValue(snapshot.SnapshotId)
	f.snapshotSteps[id]++
	switch {
	case f.failSnapshots:
		snapshot.State = aws.String(ec2.SnapshotStateError)
	case f.snapshotSteps[id] == 1:
		snapshot.Progress = aws.String("50%")
	default:
		snapshot.State = aws.String(ec2.SnapshotStateCompleted)
		snapshot.Progress = aws.String("100%")
	}
}

func instanceMatches(instance *ec2.Instance, filters []*ec2.Filter) bool {
	for _, filter := range filters {
		name := aws.StringValue(filter.Name)
		var actual string
		switch {
		case name == "instance-state-name":
			actual = aws.StringValue(instance.State.Name)
		case strings.HasPrefix(name, "tag:"):
			value, ok := tagValue(instance.Tags, strings.TrimPrefix(name, "tag:"))
			if !ok || !matchesPattern(aws.StringValueSlice(filter.Values), value) {
				return false
			}
			continue
		default:
			continue
		}

		if !contains(aws.StringValueSlice(filter.Values), actual) {
			return false
		}
	}
	return true
}

func volumeMatches(volume *ec2.Volume, filters []*ec2.Filter) bool {
	for _, filter := range filters {
		if aws.StringValue(filter.Name) != "attachment.instance-id" {
			continue
		}

		found := false
		for _, a := range volume.Attachments {
			if contains(aws.StringValueSlice(filter.Values), aws.StringValue(a.InstanceId)) {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func mergeTags(existing []*ec2.Tag, updates []*ec2.Tag) []*ec2.Tag {
	merged := append([]*ec2.Tag{}, existing...)
	for _, update := range updates {
		replaced := false
		for i, tag := range merged {
			if aws.StringValue(tag.Key) == aws.StringValue(update.Key) {
				merged[i] = &ec2.Tag{Key: update.Key, Value: update.Value}
				replaced = true
			}
		}
		if !replaced {
			merged = append(merged, &ec2.Tag{Key: update.Key, Value: update.Value})
		}
	}
	return merged
}

func tagValue(tags []*ec2.Tag, key string) (string, bool) {
	for _, tag := range tags {
		if aws.StringValue(tag.Key) == key {
			return aws.StringValue(tag.Value), true
		}
	}
	return "", false
}

func toEC2Tags(tags map[string]string) []*ec2.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ec2Tags := make([]*ec2.Tag, 0, len(keys))
	for _, k := range keys {
		ec2Tags = append(ec2Tags, &ec2.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return ec2Tags
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// matchesPattern treats * and ? in tag filter values as wildcards, as EC2 does
func matchesPattern(patterns []string, s string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, s); err == nil && ok {
			return true
		}
		if pattern == s {
			return true
		}
	}
	return false
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}
