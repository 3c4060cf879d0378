package driver_test

import (
	"context"
	"errors"

	"ebs-volume-resizer/driver"
	"ebs-volume-resizer/resources"
	"ebs-volume-resizer/waiter"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/ec2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SDKInstanceDriver", func() {
	var d *driver.SDKInstanceDriver
	ctx := context.Background()

	BeforeEach(func() {
		d = driver.NewInstanceDriver(logger, fakeEC2, fastPolicy)
	})

	Describe("FindByName", func() {
		It("returns instances whose Name tag matches exactly", func() {
			fakeEC2.AddInstance("i-other", ec2.InstanceStateNameRunning, rootDevice, map[string]string{"Name": "ec2-x01-0001"})

			instances, err := d.FindByName(ctx, "EC2-X01-0001")
			Expect(err).ToNot(HaveOccurred())
			Expect(instances).To(HaveLen(1))
			Expect(instances[0].ID).To(Equal(instanceID))
			Expect(instances[0].Name).To(Equal("EC2-X01-0001"))
			Expect(instances[0].RootDeviceName).To(Equal(rootDevice))
			Expect(instances[0].Tags.Map()).To(HaveKeyWithValue("owner", "platform"))
		})

		It("skips terminated instances", func() {
			fakeEC2.AddInstance("i-gone", ec2.InstanceStateNameTerminated, rootDevice, map[string]string{"Name": "EC2-X01-0001"})

			instances, err := d.FindByName(ctx, "EC2-X01-0001")
			Expect(err).ToNot(HaveOccurred())
			Expect(instances).To(HaveLen(1))
		})

		It("returns every match when the name is shared", func() {
			fakeEC2.AddInstance("i-twin", ec2.InstanceStateNameRunning, rootDevice, map[string]string{"Name": "EC2-X01-0001"})

			instances, err := d.FindByName(ctx, "EC2-X01-0001")
			Expect(err).ToNot(HaveOccurred())
			Expect(instances).To(HaveLen(2))
		})

		It("treats wildcard characters in the name literally", func() {
			fakeEC2.AddInstance("i-web01", ec2.InstanceStateNameRunning, rootDevice, map[string]string{"Name": "web-01"})

			instances, err := d.FindByName(ctx, "web*")
			Expect(err).ToNot(HaveOccurred())
			Expect(instances).To(BeEmpty())

			instances, err = d.FindByName(ctx, "EC2-X01-000?")
			Expect(err).ToNot(HaveOccurred())
			Expect(instances).To(BeEmpty())
		})

		It("finds an instance whose name contains wildcard characters", func() {
			fakeEC2.AddInstance("i-star", ec2.InstanceStateNameRunning, rootDevice, map[string]string{"Name": "web*"})
			fakeEC2.AddInstance("i-web01", ec2.InstanceStateNameRunning, rootDevice, map[string]string{"Name": "web-01"})

			instances, err := d.FindByName(ctx, "web*")
			Expect(err).ToNot(HaveOccurred())
			Expect(instances).To(HaveLen(1))
			Expect(instances[0].ID).To(Equal("i-star"))
		})

		It("returns an empty list when nothing matches", func() {
			instances, err := d.FindByName(ctx, "missing")
			Expect(err).ToNot(HaveOccurred())
			Expect(instances).To(BeEmpty())
		})
	})

	Describe("Get", func() {
		It("falls back to the ID as the display name", func() {
			fakeEC2.AddInstance("i-unnamed", ec2.InstanceStateNameRunning, "/dev/xvda", nil)

			instance, err := d.Get(ctx, "i-unnamed")
			Expect(err).ToNot(HaveOccurred())
			Expect(instance.Name).To(Equal("i-unnamed"))
			Expect(instance.State).To(Equal(resources.InstanceStateRunning))
		})

		It("returns a NotFoundError for an unknown instance", func() {
			_, err := d.Get(ctx, "i-missing")

			var notFound resources.NotFoundError
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(err).To(MatchError("instance i-missing not found"))
		})

		It("wraps other describe errors", func() {
			fakeEC2.FailNext("DescribeInstances", awserr.New("UnauthorizedOperation", "denied", nil))

			_, err := d.Get(ctx, instanceID)
			Expect(err).To(MatchError(ContainSubstring("describing instance " + instanceID)))
		})
	})

	Describe("ShutdownBehavior", func() {
		It("returns the instance initiated shutdown behavior", func() {
			fakeEC2.SetShutdownBehavior(instanceID, ec2.ShutdownBehaviorTerminate)

			behavior, err := d.ShutdownBehavior(ctx, instanceID)
			Expect(err).ToNot(HaveOccurred())
			Expect(behavior).To(Equal(resources.ShutdownBehaviorTerminate))
		})
	})

	Describe("Stop", func() {
		It("stops a running instance and waits for stopped", func() {
			fakeEC2.SetInstanceState(instanceID, ec2.InstanceStateNameRunning)

			Expect(d.Stop(ctx, instanceID)).To(Succeed())
			Expect(*fakeEC2.Instance(instanceID).State.Name).To(Equal(ec2.InstanceStateNameStopped))
			Expect(fakeEC2.MutatingCalls()).To(Equal([]string{"StopInstances"}))
		})

		It("returns an error when the request fails", func() {
			fakeEC2.FailNext("StopInstances", errors.New("boom"))

			err := d.Stop(ctx, instanceID)
			Expect(err).To(MatchError("stopping instance " + instanceID + ": boom"))
		})
	})

	Describe("Start", func() {
		It("starts a stopped instance and waits for running", func() {
			Expect(d.Start(ctx, instanceID)).To(Succeed())
			Expect(*fakeEC2.Instance(instanceID).State.Name).To(Equal(ec2.InstanceStateNameRunning))
			Expect(fakeEC2.MutatingCalls()).To(Equal([]string{"StartInstances"}))
		})
	})

	Describe("WaitForState", func() {
		It("fails when the instance is terminating", func() {
			fakeEC2.SetInstanceState(instanceID, ec2.InstanceStateNameShuttingDown)

			_, err := d.WaitForState(ctx, instanceID, resources.InstanceStateStopped)

			var failed waiter.FailedStatusError
			Expect(errors.As(err, &failed)).To(BeTrue())
			Expect(failed.Status).To(Equal(resources.InstanceStateShuttingDown))
		})

		It("retries transient describe errors", func() {
			fakeEC2.SetInstanceState(instanceID, ec2.InstanceStateNameStopping)
			fakeEC2.FailNext("DescribeInstances", awserr.New("RequestLimitExceeded", "slow down", nil))

			instance, err := d.WaitForState(ctx, instanceID, resources.InstanceStateStopped)
			Expect(err).ToNot(HaveOccurred())
			Expect(instance.State).To(Equal(resources.InstanceStateStopped))
		})
	})
})
