package resizer

import (
	"context"
	"fmt"

	"ebs-volume-resizer/resources"
)

// checkShutdownBehavior refuses instances that terminate on shutdown, since
// stopping one would delete its volumes
func (r *Resizer) checkShutdownBehavior(ctx context.Context, instances resources.InstanceDriver, instance resources.Instance) error {
	behavior, err := instances.ShutdownBehavior(ctx, instance.ID)
	if err != nil {
		return err
	}

	if behavior != resources.ShutdownBehaviorStop {
		return PreconditionError{
			Resource: "instance " + instance.ID,
			Reason:   fmt.Sprintf("shutdown behavior is %q, only %q is safe to stop", behavior, resources.ShutdownBehaviorStop),
		}
	}

	r.logger.Info().Msgf("instance %s shutdown behavior is %s", instance.ID, behavior)
	return nil
}

// ensureStopped issues at most one stop request. It reports whether the
// request was made.
func (r *Resizer) ensureStopped(ctx context.Context, instances resources.InstanceDriver, instanceID string) (bool, error) {
	instance, err := instances.Get(ctx, instanceID)
	if err != nil {
		return false, err
	}

	switch instance.State {
	case resources.InstanceStateStopped:
		r.logger.Info().Msgf("instance %s is already stopped", instanceID)
		return false, nil
	case resources.InstanceStateStopping:
		r.logger.Info().Msgf("instance %s is already stopping", instanceID)
		_, err = instances.WaitForState(ctx, instanceID, resources.InstanceStateStopped)
		return false, err
	case resources.InstanceStateRunning:
		if err := r.confirm(fmt.Sprintf("Stop instance %s (%s)?", instance.Name, instanceID)); err != nil {
			return false, err
		}
		return true, instances.Stop(ctx, instanceID)
	default:
		return false, UnexpectedStateError{Resource: "instance " + instanceID, State: instance.State, Action: "stop"}
	}
}

// ensureStarted mirrors ensureStopped
func (r *Resizer) ensureStarted(ctx context.Context, instances resources.InstanceDriver, instanceID string) (bool, error) {
	instance, err := instances.Get(ctx, instanceID)
	if err != nil {
		return false, err
	}

	switch instance.State {
	case resources.InstanceStateRunning:
		r.logger.Info().Msgf("instance %s is already running", instanceID)
		return false, nil
	case resources.InstanceStatePending:
		r.logger.Info().Msgf("instance %s is already starting", instanceID)
		_, err = instances.WaitForState(ctx, instanceID, resources.InstanceStateRunning)
		return false, err
	case resources.InstanceStateStopped:
		if err := r.confirm(fmt.Sprintf("Start instance %s (%s)?", instance.Name, instanceID)); err != nil {
			return false, err
		}
		return true, instances.Start(ctx, instanceID)
	default:
		return false, UnexpectedStateError{Resource: "instance " + instanceID, State: instance.State, Action: "start"}
	}
}

func (r *Resizer) confirm(question string) error {
	ok, err := r.confirmer.Confirm(question)
	if err != nil {
		return fmt.Errorf("asking for confirmation: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}
