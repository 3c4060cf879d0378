package driver

import (
	"fmt"

	"ebs-volume-resizer/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"
	"github.com/rs/zerolog"
)

// NewEC2Client builds an EC2 client for c.Region using the credentials in c.
// With debug set, every SDK request and response is logged.
func NewEC2Client(logger zerolog.Logger, c config.Config, debug bool) (ec2iface.EC2API, error) {
	awsConfig := c.Credentials.GetAwsConfig().WithLogger(NewSDKLogger(logger))
	if debug {
		awsConfig = awsConfig.WithLogLevel(aws.LogDebugWithRequestErrors | aws.LogDebugWithRequestRetries)
	}

	sess, err := session.NewSession(request.WithRetryer(awsConfig, NewEC2RetryerWithRetries(c.MaxRetries)))
	if err != nil {
		return nil, fmt.Errorf("creating aws session: %w", err)
	}

	return ec2.New(sess), nil
}
