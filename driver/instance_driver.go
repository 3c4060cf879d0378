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

var _ resources.InstanceDriver = &SDKInstanceDriver{}

// States an instance cannot leave on its way to stopped or running
var instanceFailureStates = []string{
	resources.InstanceStateShuttingDown,
	resources.InstanceStateTerminated,
}

// SDKInstanceDriver finds instances and moves them between running and stopped
type SDKInstanceDriver struct {
	ec2Client ec2iface.EC2API
	logger    zerolog.Logger
	policy    config.PollPolicy
}

// NewInstanceDriver creates a SDKInstanceDriver polling with policy
func NewInstanceDriver(logger zerolog.Logger, ec2Client ec2iface.EC2API, policy config.PollPolicy) *SDKInstanceDriver {
	return &SDKInstanceDriver{
		ec2Client: ec2Client,
		logger:    logger.With().Str("component", "SDKInstanceDriver").Logger(),
		policy:    policy,
	}
}

// FindByName returns every non-terminated instance whose Name tag equals name
func (d *SDKInstanceDriver) FindByName(ctx context.Context, name string) ([]resources.Instance, error) {
	d.logger.Info().Msgf("looking up instances named %s", name)

	instances := []resources.Instance{}
	err := d.ec2Client.DescribeInstancesPagesWithContext(ctx, &ec2.DescribeInstancesInput{
		Filters: []*ec2.Filter{
			{Name: aws.String("tag:Name"), Values: aws.StringSlice([]string{name})},
			{Name: aws.String("instance-state-name"), Values: aws.StringSlice([]string{
				resources.InstanceStatePending,
				resources.InstanceStateRunning,
				resources.InstanceStateStopping,
				resources.InstanceStateStopped,
			})},
		},
	}, func(page *ec2.DescribeInstancesOutput, _ bool) bool {
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				// the tag filter treats * and ? as wildcards
				if tagName, ok := tagsFromEC2(instance.Tags).Get(resources.NameTag); !ok || tagName != name {
					continue
				}
				instances = append(instances, instanceFromEC2(instance))
			}
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("describing instances named %s: %w", name, err)
	}

	return instances, nil
}

// Get describes a single instance
func (d *SDKInstanceDriver) Get(ctx context.Context, instanceID string) (resources.Instance, error) {
	output, err := d.ec2Client.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{
		InstanceIds: aws.StringSlice([]string{instanceID}),
	})
	if err != nil {
		if isNotFound(err, "InvalidInstanceID.NotFound", "InvalidInstanceID.Malformed") {
			return resources.Instance{}, resources.NotFoundError{Kind: "instance", ID: instanceID}
		}
		return resources.Instance{}, fmt.Errorf("describing instance %s: %w", instanceID, err)
	}

	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			return instanceFromEC2(instance), nil
		}
	}

	return resources.Instance{}, resources.NotFoundError{Kind: "instance", ID: instanceID}
}

// ShutdownBehavior reads the instanceInitiatedShutdownBehavior attribute
func (d *SDKInstanceDriver) ShutdownBehavior(ctx context.Context, instanceID string) (string, error) {
	output, err := d.ec2Client.DescribeInstanceAttributeWithContext(ctx, &ec2.DescribeInstanceAttributeInput{
		InstanceId: aws.String(instanceID),
		Attribute:  aws.String(ec2.InstanceAttributeNameInstanceInitiatedShutdownBehavior),
	})
	if err != nil {
		return "", fmt.Errorf("reading shutdown behavior of instance %s: %w", instanceID, err)
	}

	if output.InstanceInitiatedShutdownBehavior == nil {
		return "", fmt.Errorf("instance %s reported no shutdown behavior", instanceID)
	}

	return aws.StringValue(output.InstanceInitiatedShutdownBehavior.Value), nil
}

// Stop requests a stop and waits until the instance reports stopped
func (d *SDKInstanceDriver) Stop(ctx context.Context, instanceID string) error {
	defer logCompletion(d.logger, "Stop", time.Now())

	d.logger.Info().Msgf("stopping instance %s", instanceID)
	_, err := d.ec2Client.StopInstancesWithContext(ctx, &ec2.StopInstancesInput{
		InstanceIds: aws.StringSlice([]string{instanceID}),
	})
	if err != nil {
		return fmt.Errorf("stopping instance %s: %w", instanceID, err)
	}

	_, err = d.WaitForState(ctx, instanceID, resources.InstanceStateStopped)
	return err
}

// Start requests a start and waits until the instance reports running
func (d *SDKInstanceDriver) Start(ctx context.Context, instanceID string) error {
	defer logCompletion(d.logger, "Start", time.Now())

	d.logger.Info().Msgf("starting instance %s", instanceID)
	_, err := d.ec2Client.StartInstancesWithContext(ctx, &ec2.StartInstancesInput{
		InstanceIds: aws.StringSlice([]string{instanceID}),
	})
	if err != nil {
		return fmt.Errorf("starting instance %s: %w", instanceID, err)
	}

	_, err = d.WaitForState(ctx, instanceID, resources.InstanceStateRunning)
	return err
}

// WaitForState polls the instance until it reports state
func (d *SDKInstanceDriver) WaitForState(ctx context.Context, instanceID string, state string) (resources.Instance, error) {
	fetcher := func(ctx context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
		instance, err := d.Get(ctx, resource.ID())
		if err != nil {
			return nil, err
		}
		return instanceStatus{instance}, nil
	}

	info, err := waiter.WaitForStatus(ctx, fetcher, waiter.WaiterConfig{
		Resource:        waiter.ID(instanceID),
		DesiredStatus:   state,
		FailureStatuses: instanceFailureStates,
		PollInterval:    d.policy.Interval,
		PollTimeout:     d.policy.Timeout,
		PollRetries:     d.policy.Retries,
		Logger:          d.logger,
	})
	if err != nil {
		return resources.Instance{}, fmt.Errorf("waiting for instance %s to be %s: %w", instanceID, state, err)
	}

	return info.(instanceStatus).Instance, nil
}
