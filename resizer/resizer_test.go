package resizer_test

import (
	"context"
	"errors"

	"ebs-volume-resizer/collection"
	"ebs-volume-resizer/driverset/driversetfakes"
	"ebs-volume-resizer/prompt/promptfakes"
	"ebs-volume-resizer/resizer"
	"ebs-volume-resizer/resources"
	"ebs-volume-resizer/resources/resourcesfakes"
	"ebs-volume-resizer/waiter"

	"github.com/rs/zerolog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Resizer", func() {
	const (
		fakeInstanceID   = "i-0123456789abcdef0"
		fakeInstanceName = "EC2-X01-0001"
		fakeRootDevice   = "/dev/sda1"
		fakeOldVolumeID  = "vol-old"
		fakeNewVolumeID  = "vol-new"
		fakeSnapshotID   = "snap-0001"
	)

	var (
		ctx context.Context

		fakeDs               *driversetfakes.FakeResizeDriverSet
		fakeInstanceDriver   *resourcesfakes.FakeInstanceDriver
		fakeVolumeDriver     *resourcesfakes.FakeVolumeDriver
		fakeSnapshotDriver   *resourcesfakes.FakeSnapshotDriver
		fakeAttachmentDriver *resourcesfakes.FakeAttachmentDriver
		fakeConfirmer        *promptfakes.FakeConfirmer

		instance  resources.Instance
		oldVolume resources.Volume
		request   resizer.Request
		r         *resizer.Resizer
	)

	withState := func(state string) resources.Instance {
		i := instance
		i.State = state
		return i
	}

	// mutatingCalls counts every driver call that changes remote state
	mutatingCalls := func() int {
		return fakeInstanceDriver.StopCallCount() +
			fakeInstanceDriver.StartCallCount() +
			fakeSnapshotDriver.CreateCallCount() +
			fakeVolumeDriver.CreateFromSnapshotCallCount() +
			fakeAttachmentDriver.DetachCallCount() +
			fakeAttachmentDriver.AttachCallCount()
	}

	BeforeEach(func() {
		ctx = context.Background()

		instance = resources.Instance{
			ID:             fakeInstanceID,
			Name:           fakeInstanceName,
			State:          resources.InstanceStateRunning,
			RootDeviceName: fakeRootDevice,
			Tags:           collection.FromMap(map[string]string{"Name": fakeInstanceName, "env": "prod"}),
		}
		oldVolume = resources.Volume{
			ID:               fakeOldVolumeID,
			SizeGiB:          20,
			Type:             "gp2",
			AvailabilityZone: "us-east-1a",
			State:            resources.VolumeStateInUse,
			Attachments: []resources.VolumeAttachment{{
				InstanceID: fakeInstanceID,
				Device:     fakeRootDevice,
				State:      resources.AttachmentStateAttached,
			}},
		}
		dataVolume := resources.Volume{
			ID:      "vol-data",
			SizeGiB: 100,
			Attachments: []resources.VolumeAttachment{{
				InstanceID: fakeInstanceID,
				Device:     "/dev/sdf",
				State:      resources.AttachmentStateAttached,
			}},
		}

		fakeInstanceDriver = &resourcesfakes.FakeInstanceDriver{}
		fakeInstanceDriver.FindByNameReturns([]resources.Instance{instance}, nil)
		fakeInstanceDriver.GetReturnsOnCall(0, withState(resources.InstanceStateRunning), nil)
		fakeInstanceDriver.GetReturnsOnCall(1, withState(resources.InstanceStateStopped), nil)
		fakeInstanceDriver.ShutdownBehaviorReturns(resources.ShutdownBehaviorStop, nil)

		fakeVolumeDriver = &resourcesfakes.FakeVolumeDriver{}
		fakeVolumeDriver.ListAttachedReturns([]resources.Volume{dataVolume, oldVolume}, nil)
		fakeVolumeDriver.GetReturns(oldVolume, nil)
		fakeVolumeDriver.CreateFromSnapshotReturns(resources.Volume{
			ID:               fakeNewVolumeID,
			SizeGiB:          40,
			Type:             "gp2",
			AvailabilityZone: "us-east-1a",
			State:            resources.VolumeStateAvailable,
		}, nil)

		fakeSnapshotDriver = &resourcesfakes.FakeSnapshotDriver{}
		fakeSnapshotDriver.CreateReturns(resources.Snapshot{
			ID:       fakeSnapshotID,
			VolumeID: fakeOldVolumeID,
			State:    resources.SnapshotStateCompleted,
		}, nil)

		fakeAttachmentDriver = &resourcesfakes.FakeAttachmentDriver{}
		fakeAttachmentDriver.AttachReturns(resources.VolumeAttachment{
			InstanceID: fakeInstanceID,
			Device:     fakeRootDevice,
			State:      resources.AttachmentStateAttached,
		}, nil)

		fakeDs = &driversetfakes.FakeResizeDriverSet{}
		fakeDs.InstanceDriverReturns(fakeInstanceDriver)
		fakeDs.VolumeDriverReturns(fakeVolumeDriver)
		fakeDs.SnapshotDriverReturns(fakeSnapshotDriver)
		fakeDs.AttachmentDriverReturns(fakeAttachmentDriver)

		fakeConfirmer = &promptfakes.FakeConfirmer{}
		fakeConfirmer.ConfirmReturns(true, nil)

		request = resizer.Request{InstanceName: fakeInstanceName, SizeGiB: 40}
		r = resizer.NewResizer(zerolog.New(GinkgoWriter), fakeConfirmer)
	})

	It("uses the provided driver set to orchestrate the resize of the root volume", func() {
		result, err := r.Resize(ctx, fakeDs, request)
		Expect(err).ToNot(HaveOccurred())

		_, name := fakeInstanceDriver.FindByNameArgsForCall(0)
		Expect(name).To(Equal(fakeInstanceName))

		_, instanceID := fakeVolumeDriver.ListAttachedArgsForCall(0)
		Expect(instanceID).To(Equal(fakeInstanceID))

		Expect(fakeInstanceDriver.ShutdownBehaviorCallCount()).To(Equal(1))
		Expect(fakeInstanceDriver.StopCallCount()).To(Equal(1))

		Expect(fakeSnapshotDriver.CreateCallCount()).To(Equal(1))
		_, snapshotConfig := fakeSnapshotDriver.CreateArgsForCall(0)
		Expect(snapshotConfig).To(Equal(resources.SnapshotDriverConfig{
			VolumeID:     fakeOldVolumeID,
			InstanceID:   fakeInstanceID,
			InstanceName: fakeInstanceName,
			InstanceTags: instance.Tags,
		}))

		Expect(fakeVolumeDriver.CreateFromSnapshotCallCount()).To(Equal(1))
		_, volumeConfig := fakeVolumeDriver.CreateFromSnapshotArgsForCall(0)
		Expect(volumeConfig).To(Equal(resources.VolumeDriverConfig{
			SnapshotID:     fakeSnapshotID,
			SizeGiB:        40,
			SourceVolumeID: fakeOldVolumeID,
		}))

		Expect(fakeAttachmentDriver.DetachCallCount()).To(Equal(1))
		_, detachConfig := fakeAttachmentDriver.DetachArgsForCall(0)
		Expect(detachConfig).To(Equal(resources.AttachmentDriverConfig{
			InstanceID: fakeInstanceID,
			VolumeID:   fakeOldVolumeID,
			Device:     fakeRootDevice,
		}))

		Expect(fakeAttachmentDriver.AttachCallCount()).To(Equal(1))
		_, attachConfig := fakeAttachmentDriver.AttachArgsForCall(0)
		Expect(attachConfig).To(Equal(resources.AttachmentDriverConfig{
			InstanceID: fakeInstanceID,
			VolumeID:   fakeNewVolumeID,
			Device:     fakeRootDevice,
		}))

		Expect(fakeInstanceDriver.StartCallCount()).To(Equal(1))

		Expect(result.Completed).To(BeTrue())
		Expect(result.Stopped).To(BeTrue())
		Expect(result.Started).To(BeTrue())
		Expect(result.Device).To(Equal(fakeRootDevice))
		Expect(result.OldVolume.ID).To(Equal(fakeOldVolumeID))
		Expect(result.Snapshot.ID).To(Equal(fakeSnapshotID))
		Expect(result.NewVolume.ID).To(Equal(fakeNewVolumeID))
	})

	It("asks to resize, stop and start, in that order", func() {
		_, err := r.Resize(ctx, fakeDs, request)
		Expect(err).ToNot(HaveOccurred())

		Expect(fakeConfirmer.ConfirmCallCount()).To(Equal(3))
		Expect(fakeConfirmer.ConfirmArgsForCall(0)).To(Equal("Resize volume vol-old at /dev/sda1 on instance EC2-X01-0001 (i-0123456789abcdef0) from 20 GiB to 40 GiB?"))
		Expect(fakeConfirmer.ConfirmArgsForCall(1)).To(HavePrefix("Stop instance"))
		Expect(fakeConfirmer.ConfirmArgsForCall(2)).To(HavePrefix("Start instance"))
	})

	It("resizes an explicitly selected volume", func() {
		request.VolumeID = "vol-data"
		request.SizeGiB = 200
		dataVolume := resources.Volume{ID: "vol-data", SizeGiB: 100, Attachments: []resources.VolumeAttachment{{InstanceID: fakeInstanceID, Device: "/dev/sdf"}}}
		fakeVolumeDriver.GetReturns(dataVolume, nil)

		result, err := r.Resize(ctx, fakeDs, request)
		Expect(err).ToNot(HaveOccurred())

		_, snapshotConfig := fakeSnapshotDriver.CreateArgsForCall(0)
		Expect(snapshotConfig.VolumeID).To(Equal("vol-data"))
		_, attachConfig := fakeAttachmentDriver.AttachArgsForCall(0)
		Expect(attachConfig.Device).To(Equal("/dev/sdf"))
		Expect(result.Device).To(Equal("/dev/sdf"))
	})

	Context("resolving the instance", func() {
		It("fails when no instance has the name, before looking at volumes", func() {
			fakeInstanceDriver.FindByNameReturns([]resources.Instance{}, nil)

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError(resizer.ResolutionError{Kind: "instance", Identifier: fakeInstanceName, Reason: "not found"}))
			Expect(fakeVolumeDriver.ListAttachedCallCount()).To(Equal(0))
			Expect(mutatingCalls()).To(Equal(0))
		})

		It("fails when more than one instance has the name", func() {
			twin := instance
			twin.ID = "i-twin"
			fakeInstanceDriver.FindByNameReturns([]resources.Instance{instance, twin}, nil)

			_, err := r.Resize(ctx, fakeDs, request)

			var resolutionErr resizer.ResolutionError
			Expect(errors.As(err, &resolutionErr)).To(BeTrue())
			Expect(resolutionErr.Candidates).To(Equal([]string{fakeInstanceID, "i-twin"}))
			Expect(err.Error()).To(ContainSubstring("--instance-id"))
			Expect(fakeVolumeDriver.ListAttachedCallCount()).To(Equal(0))
		})

		It("looks the instance up by ID", func() {
			request = resizer.Request{InstanceID: fakeInstanceID, SizeGiB: 40}
			fakeInstanceDriver.GetReturnsOnCall(0, instance, nil)
			fakeInstanceDriver.GetReturnsOnCall(1, withState(resources.InstanceStateRunning), nil)
			fakeInstanceDriver.GetReturnsOnCall(2, withState(resources.InstanceStateStopped), nil)

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).ToNot(HaveOccurred())
			Expect(fakeInstanceDriver.FindByNameCallCount()).To(Equal(0))
			_, id := fakeInstanceDriver.GetArgsForCall(0)
			Expect(id).To(Equal(fakeInstanceID))
		})

		It("fails when the instance ID does not exist", func() {
			request = resizer.Request{InstanceID: "i-missing", SizeGiB: 40}
			fakeInstanceDriver.GetReturnsOnCall(0, resources.Instance{}, resources.NotFoundError{Kind: "instance", ID: "i-missing"})

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError("resolving instance i-missing: not found"))
		})

		It("wraps other lookup errors", func() {
			fakeInstanceDriver.FindByNameReturns(nil, errors.New("throttled"))

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError("resolving instance EC2-X01-0001: throttled"))
		})
	})

	Context("resolving the volume", func() {
		It("fails when the selected volume is not attached to the instance", func() {
			request.VolumeID = "vol-elsewhere"

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError(ContainSubstring("resolving volume vol-elsewhere: not found")))
			Expect(mutatingCalls()).To(Equal(0))
		})

		It("fails when no volume is attached at the root device", func() {
			fakeVolumeDriver.ListAttachedReturns([]resources.Volume{}, nil)

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError(ContainSubstring("no root volume found")))
		})
	})

	Context("when the requested size is not larger than the current size", func() {
		It("fails naming the minimum size without any further calls", func() {
			request.SizeGiB = 20

			result, err := r.Resize(ctx, fakeDs, request)

			var preconditionErr resizer.PreconditionError
			Expect(errors.As(err, &preconditionErr)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("the minimum is 21 GiB"))
			Expect(result.OldVolume.ID).To(Equal(fakeOldVolumeID))

			Expect(fakeConfirmer.ConfirmCallCount()).To(Equal(0))
			Expect(fakeInstanceDriver.ShutdownBehaviorCallCount()).To(Equal(0))
			Expect(fakeInstanceDriver.GetCallCount()).To(Equal(0))
			Expect(mutatingCalls()).To(Equal(0))
		})
	})

	Context("when the operator declines the resize", func() {
		It("returns ErrDeclined before the safety check", func() {
			fakeConfirmer.ConfirmReturns(false, nil)

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError(resizer.ErrDeclined))
			Expect(fakeInstanceDriver.ShutdownBehaviorCallCount()).To(Equal(0))
			Expect(mutatingCalls()).To(Equal(0))
		})
	})

	Context("when the instance terminates on shutdown", func() {
		It("fails before any stop request", func() {
			fakeInstanceDriver.ShutdownBehaviorReturns(resources.ShutdownBehaviorTerminate, nil)

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError(ContainSubstring(`shutdown behavior is "terminate"`)))
			Expect(fakeInstanceDriver.GetCallCount()).To(Equal(0))
			Expect(mutatingCalls()).To(Equal(0))
		})
	})

	Context("stopping the instance", func() {
		It("exits cleanly with no mutating calls when the stop is declined", func() {
			fakeConfirmer.ConfirmReturnsOnCall(0, true, nil)
			fakeConfirmer.ConfirmReturnsOnCall(1, false, nil)

			result, err := r.Resize(ctx, fakeDs, request)
			Expect(errors.Is(err, resizer.ErrDeclined)).To(BeTrue())
			Expect(result.Stopped).To(BeFalse())
			Expect(mutatingCalls()).To(Equal(0))
		})

		It("does not stop an instance that is already stopped", func() {
			fakeInstanceDriver.GetReturnsOnCall(0, withState(resources.InstanceStateStopped), nil)

			result, err := r.Resize(ctx, fakeDs, request)
			Expect(err).ToNot(HaveOccurred())
			Expect(fakeInstanceDriver.StopCallCount()).To(Equal(0))
			Expect(fakeInstanceDriver.WaitForStateCallCount()).To(Equal(0))
			Expect(result.Stopped).To(BeFalse())
		})

		It("waits for a stopping instance without a new request", func() {
			fakeInstanceDriver.GetReturnsOnCall(0, withState(resources.InstanceStateStopping), nil)

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).ToNot(HaveOccurred())
			Expect(fakeInstanceDriver.StopCallCount()).To(Equal(0))
			Expect(fakeInstanceDriver.WaitForStateCallCount()).To(Equal(1))
			_, _, state := fakeInstanceDriver.WaitForStateArgsForCall(0)
			Expect(state).To(Equal(resources.InstanceStateStopped))
		})

		It("fails on a state it cannot stop from", func() {
			fakeInstanceDriver.GetReturnsOnCall(0, withState(resources.InstanceStatePending), nil)

			_, err := r.Resize(ctx, fakeDs, request)

			var stateErr resizer.UnexpectedStateError
			Expect(errors.As(err, &stateErr)).To(BeTrue())
			Expect(stateErr.State).To(Equal(resources.InstanceStatePending))
			Expect(mutatingCalls()).To(Equal(0))
		})

		It("stops when the stop request fails", func() {
			fakeInstanceDriver.StopReturns(errors.New("insufficient capacity"))

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError("stopping instance i-0123456789abcdef0: insufficient capacity"))
			Expect(fakeSnapshotDriver.CreateCallCount()).To(Equal(0))
		})
	})

	Context("when the snapshot fails", func() {
		It("reports the snapshot and does not create a volume", func() {
			fakeSnapshotDriver.CreateReturns(resources.Snapshot{ID: fakeSnapshotID, State: resources.SnapshotStateError},
				waiter.FailedStatusError{ResourceID: fakeSnapshotID, Status: resources.SnapshotStateError})

			result, err := r.Resize(ctx, fakeDs, request)

			var failed waiter.FailedStatusError
			Expect(errors.As(err, &failed)).To(BeTrue())
			Expect(result.Snapshot.ID).To(Equal(fakeSnapshotID))
			Expect(fakeVolumeDriver.CreateFromSnapshotCallCount()).To(Equal(0))
			Expect(fakeInstanceDriver.StartCallCount()).To(Equal(0))
		})
	})

	Context("when the new volume fails", func() {
		It("reports the volume and leaves the old one attached", func() {
			fakeVolumeDriver.CreateFromSnapshotReturns(resources.Volume{ID: fakeNewVolumeID}, errors.New("volume entered error"))

			result, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError("creating volume: volume entered error"))
			Expect(result.NewVolume.ID).To(Equal(fakeNewVolumeID))
			Expect(fakeAttachmentDriver.DetachCallCount()).To(Equal(0))
		})
	})

	Context("swapping the volumes", func() {
		It("reuses the device the old volume occupies at swap time", func() {
			moved := oldVolume
			moved.Attachments = []resources.VolumeAttachment{{InstanceID: fakeInstanceID, Device: "/dev/xvda"}}
			fakeVolumeDriver.GetReturns(moved, nil)

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).ToNot(HaveOccurred())

			_, detachConfig := fakeAttachmentDriver.DetachArgsForCall(0)
			_, attachConfig := fakeAttachmentDriver.AttachArgsForCall(0)
			Expect(detachConfig.Device).To(Equal("/dev/xvda"))
			Expect(attachConfig.Device).To(Equal(detachConfig.Device))
		})

		It("fails when the old volume is no longer attached to the instance", func() {
			detached := oldVolume
			detached.Attachments = nil
			detached.State = resources.VolumeStateAvailable
			fakeVolumeDriver.GetReturns(detached, nil)

			_, err := r.Resize(ctx, fakeDs, request)

			var stateErr resizer.UnexpectedStateError
			Expect(errors.As(err, &stateErr)).To(BeTrue())
			Expect(fakeAttachmentDriver.DetachCallCount()).To(Equal(0))
		})

		It("uses this instance's attachment of a multi-attached volume", func() {
			shared := oldVolume
			shared.Type = "io2"
			shared.Attachments = []resources.VolumeAttachment{
				{InstanceID: "i-peer", Device: "/dev/sdz", State: resources.AttachmentStateAttached},
				{InstanceID: fakeInstanceID, Device: fakeRootDevice, State: resources.AttachmentStateAttached},
			}
			fakeVolumeDriver.ListAttachedReturns([]resources.Volume{shared}, nil)
			fakeVolumeDriver.GetReturns(shared, nil)

			result, err := r.Resize(ctx, fakeDs, request)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Device).To(Equal(fakeRootDevice))

			_, detachConfig := fakeAttachmentDriver.DetachArgsForCall(0)
			Expect(detachConfig.InstanceID).To(Equal(fakeInstanceID))
			Expect(detachConfig.Device).To(Equal(fakeRootDevice))
		})

		It("names the detached volume, the instance and the device when attach fails", func() {
			fakeAttachmentDriver.AttachReturns(resources.VolumeAttachment{}, errors.New("attachment point in use"))

			result, err := r.Resize(ctx, fakeDs, request)

			var detachedErr resizer.DetachedVolumeError
			Expect(errors.As(err, &detachedErr)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(fakeOldVolumeID))
			Expect(err.Error()).To(ContainSubstring(fakeInstanceID))
			Expect(err.Error()).To(ContainSubstring(fakeRootDevice))
			Expect(result.Detached).To(BeTrue())
			Expect(result.Attached).To(BeFalse())
			Expect(fakeAttachmentDriver.DetachCallCount()).To(Equal(1))
			Expect(fakeInstanceDriver.StartCallCount()).To(Equal(0))
		})
	})

	Context("starting the instance", func() {
		It("waits for a pending instance without a new request", func() {
			fakeInstanceDriver.GetReturnsOnCall(1, withState(resources.InstanceStatePending), nil)

			_, err := r.Resize(ctx, fakeDs, request)
			Expect(err).ToNot(HaveOccurred())
			Expect(fakeInstanceDriver.StartCallCount()).To(Equal(0))
			_, _, state := fakeInstanceDriver.WaitForStateArgsForCall(0)
			Expect(state).To(Equal(resources.InstanceStateRunning))
		})

		It("reports a declined start without undoing the swap", func() {
			fakeConfirmer.ConfirmReturnsOnCall(2, false, nil)

			result, err := r.Resize(ctx, fakeDs, request)
			Expect(err).To(MatchError(ContainSubstring(resizer.ErrDeclined.Error())))
			Expect(result.Attached).To(BeTrue())
			Expect(result.Completed).To(BeFalse())
			Expect(fakeInstanceDriver.StartCallCount()).To(Equal(0))
		})
	})

	It("stops polling when the context is cancelled", func() {
		cancelled, cancel := context.WithCancel(ctx)
		fakeInstanceDriver.StopCalls(func(ctx context.Context, _ string) error {
			cancel()
			return ctx.Err()
		})

		_, err := r.Resize(cancelled, fakeDs, request)
		Expect(err).To(MatchError(context.Canceled))
		Expect(fakeSnapshotDriver.CreateCallCount()).To(Equal(0))
	})
})
