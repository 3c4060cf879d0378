package resizer

import (
	"context"
	"fmt"
	"time"

	"ebs-volume-resizer/driverset"
	"ebs-volume-resizer/prompt"
	"ebs-volume-resizer/resources"

	"github.com/rs/zerolog"
)

// Request selects the volume to grow. Exactly one of InstanceName and
// InstanceID is set. An empty VolumeID selects the root volume.
type Request struct {
	InstanceName string
	InstanceID   string
	VolumeID     string
	SizeGiB      int64
}

// Result records what a resize did. It is filled in as stages complete, so
// after a failure it lists every resource that had been created or changed.
type Result struct {
	Instance  resources.Instance
	Device    string
	OldVolume resources.Volume
	Snapshot  resources.Snapshot
	NewVolume resources.Volume

	Stopped   bool
	Detached  bool
	Attached  bool
	Started   bool
	Completed bool
}

type Resizer struct {
	confirmer prompt.Confirmer
	logger    zerolog.Logger
}

func NewResizer(logger zerolog.Logger, confirmer prompt.Confirmer) *Resizer {
	return &Resizer{
		confirmer: confirmer,
		logger:    logger.With().Str("component", "Resizer").Logger(),
	}
}

// Resize runs every stage in order: resolve, check, stop, snapshot,
// provision, swap, start. It stops at the first error and never undoes an
// earlier stage. The returned Result is never nil.
func (r *Resizer) Resize(ctx context.Context, ds driverset.ResizeDriverSet, req Request) (*Result, error) {
	defer func(startTime time.Time) {
		r.logger.Info().Msgf("completed Resize() in %f minutes", time.Since(startTime).Minutes())
	}(time.Now())

	result := &Result{}
	instanceDriver := ds.InstanceDriver()
	volumeDriver := ds.VolumeDriver()

	instance, err := r.resolveInstance(ctx, instanceDriver, req)
	if err != nil {
		return result, err
	}
	result.Instance = instance
	r.logger.Info().Msgf("resolved instance %s (%s)", instance.Name, instance.ID)

	volume, err := r.resolveVolume(ctx, volumeDriver, instance, req.VolumeID)
	if err != nil {
		return result, err
	}
	result.OldVolume = volume
	result.Device = volume.DeviceOn(instance.ID)
	r.logger.Info().Msgf("resolved volume %s (%d GiB %s) at %s", volume.ID, volume.SizeGiB, volume.Type, volume.DeviceOn(instance.ID))

	if err := checkSize(volume, req.SizeGiB); err != nil {
		return result, err
	}

	question := fmt.Sprintf("Resize volume %s at %s on instance %s (%s) from %d GiB to %d GiB?",
		volume.ID, volume.DeviceOn(instance.ID), instance.Name, instance.ID, volume.SizeGiB, req.SizeGiB)
	if err := r.confirm(question); err != nil {
		return result, err
	}

	if err := r.checkShutdownBehavior(ctx, instanceDriver, instance); err != nil {
		return result, err
	}

	result.Stopped, err = r.ensureStopped(ctx, instanceDriver, instance.ID)
	if err != nil {
		return result, fmt.Errorf("stopping instance %s: %w", instance.ID, err)
	}

	result.Snapshot, err = ds.SnapshotDriver().Create(ctx, resources.SnapshotDriverConfig{
		VolumeID:     volume.ID,
		InstanceID:   instance.ID,
		InstanceName: instance.Name,
		InstanceTags: instance.Tags,
	})
	if err != nil {
		return result, fmt.Errorf("creating snapshot: %w", err)
	}
	r.logger.Info().Msgf("snapshot %s of volume %s completed", result.Snapshot.ID, volume.ID)

	result.NewVolume, err = volumeDriver.CreateFromSnapshot(ctx, resources.VolumeDriverConfig{
		SnapshotID:     result.Snapshot.ID,
		SizeGiB:        req.SizeGiB,
		SourceVolumeID: volume.ID,
	})
	if err != nil {
		return result, fmt.Errorf("creating volume: %w", err)
	}
	r.logger.Info().Msgf("volume %s (%d GiB) is available", result.NewVolume.ID, result.NewVolume.SizeGiB)

	if err := r.swap(ctx, ds, result); err != nil {
		return result, err
	}

	result.Started, err = r.ensureStarted(ctx, instanceDriver, instance.ID)
	if err != nil {
		return result, fmt.Errorf("starting instance %s: %w", instance.ID, err)
	}

	result.Completed = true
	return result, nil
}

// swap moves result.NewVolume onto the device result.OldVolume occupies
func (r *Resizer) swap(ctx context.Context, ds driverset.ResizeDriverSet, result *Result) error {
	old, err := ds.VolumeDriver().Get(ctx, result.OldVolume.ID)
	if err != nil {
		return fmt.Errorf("reading volume %s before detach: %w", result.OldVolume.ID, err)
	}
	attachment, ok := old.AttachmentTo(result.Instance.ID)
	if !ok {
		return UnexpectedStateError{Resource: "volume " + old.ID, State: old.State, Action: "detach"}
	}
	result.Device = attachment.Device

	attachmentDriver := ds.AttachmentDriver()
	err = attachmentDriver.Detach(ctx, resources.AttachmentDriverConfig{
		InstanceID: result.Instance.ID,
		VolumeID:   old.ID,
		Device:     result.Device,
	})
	if err != nil {
		return fmt.Errorf("detaching volume %s: %w", old.ID, err)
	}
	result.Detached = true
	r.logger.Warn().Msgf("volume %s detached, instance %s has no volume at %s until the new volume is attached", old.ID, result.Instance.ID, result.Device)

	_, err = attachmentDriver.Attach(ctx, resources.AttachmentDriverConfig{
		InstanceID: result.Instance.ID,
		VolumeID:   result.NewVolume.ID,
		Device:     result.Device,
	})
	if err != nil {
		return DetachedVolumeError{InstanceID: result.Instance.ID, VolumeID: old.ID, Device: result.Device, Err: err}
	}
	result.Attached = true
	r.logger.Info().Msgf("volume %s attached to %s at %s", result.NewVolume.ID, result.Instance.ID, result.Device)

	return nil
}
