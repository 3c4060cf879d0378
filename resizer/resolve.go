package resizer

import (
	"context"
	"errors"
	"fmt"

	"ebs-volume-resizer/resources"
)

func (r *Resizer) resolveInstance(ctx context.Context, instances resources.InstanceDriver, req Request) (resources.Instance, error) {
	if req.InstanceID != "" {
		instance, err := instances.Get(ctx, req.InstanceID)
		if err != nil {
			var notFound resources.NotFoundError
			if errors.As(err, &notFound) {
				return resources.Instance{}, ResolutionError{Kind: "instance", Identifier: req.InstanceID, Reason: "not found"}
			}
			return resources.Instance{}, fmt.Errorf("resolving instance %s: %w", req.InstanceID, err)
		}
		return instance, nil
	}

	matches, err := instances.FindByName(ctx, req.InstanceName)
	if err != nil {
		return resources.Instance{}, fmt.Errorf("resolving instance %s: %w", req.InstanceName, err)
	}

	switch len(matches) {
	case 0:
		return resources.Instance{}, ResolutionError{Kind: "instance", Identifier: req.InstanceName, Reason: "not found"}
	case 1:
		return matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for _, match := range matches {
			ids = append(ids, match.ID)
		}
		return resources.Instance{}, ResolutionError{
			Kind:       "instance",
			Identifier: req.InstanceName,
			Reason:     "name matches more than one instance, select one with --instance-id",
			Candidates: ids,
		}
	}
}

func (r *Resizer) resolveVolume(ctx context.Context, volumes resources.VolumeDriver, instance resources.Instance, volumeID string) (resources.Volume, error) {
	attached, err := volumes.ListAttached(ctx, instance.ID)
	if err != nil {
		return resources.Volume{}, fmt.Errorf("listing volumes of instance %s: %w", instance.ID, err)
	}

	for _, volume := range attached {
		if volumeID != "" && volume.ID == volumeID {
			return volume, nil
		}
		if volumeID == "" && volume.DeviceOn(instance.ID) == instance.RootDeviceName {
			return volume, nil
		}
	}

	if volumeID != "" {
		return resources.Volume{}, ResolutionError{Kind: "volume", Identifier: volumeID, Reason: fmt.Sprintf("not found attached to instance %s", instance.ID)}
	}

	return resources.Volume{}, ResolutionError{Kind: "volume", Identifier: instance.RootDeviceName, Reason: fmt.Sprintf("no root volume found on instance %s", instance.ID)}
}

func checkSize(volume resources.Volume, sizeGiB int64) error {
	if sizeGiB <= volume.SizeGiB {
		return PreconditionError{
			Resource: "volume " + volume.ID,
			Reason:   fmt.Sprintf("requested size %d GiB must be larger than the current %d GiB, the minimum is %d GiB", sizeGiB, volume.SizeGiB, volume.SizeGiB+1),
		}
	}
	return nil
}
