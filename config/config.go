package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/credentials/ec2rolecreds"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/ec2metadata"
	"github.com/aws/aws-sdk-go/aws/session"

	"ebs-volume-resizer/collection"
)

// Polling defaults. Instance and attachment transitions take seconds, while
// snapshot and volume provisioning scale with volume size.
const (
	DefaultInstanceInterval   = 5 * time.Second
	DefaultAttachmentInterval = 5 * time.Second
	DefaultSnapshotInterval   = 30 * time.Second
	DefaultVolumeInterval     = 30 * time.Second
	DefaultDescribeRetries    = 3
	DefaultMaxRetries         = 3
)

// Convention:
// 1. required
// 2. optional, defaulted
// 3. optional
type Config struct {
	Region      string      `json:"region"`
	Credentials Credentials `json:"credentials"`
	Polling     Polling     `json:"polling"`
	MaxRetries  int         `json:"max_retries"`
}

type Credentials struct {
	AccessKey    string `json:"access_key"`
	SecretKey    string `json:"secret_key"`
	SessionToken string `json:"session_token"`
	RoleArn      string `json:"role_arn"`
	Region       string `json:"-"`
}

// Polling controls every wait loop. A zero timeout waits until the target
// state is reached or the process is interrupted.
type Polling struct {
	InstanceInterval   Duration `json:"instance_interval"`
	AttachmentInterval Duration `json:"attachment_interval"`
	SnapshotInterval   Duration `json:"snapshot_interval"`
	VolumeInterval     Duration `json:"volume_interval"`
	InstanceTimeout    Duration `json:"instance_timeout"`
	AttachmentTimeout  Duration `json:"attachment_timeout"`
	SnapshotTimeout    Duration `json:"snapshot_timeout"`
	VolumeTimeout      Duration `json:"volume_timeout"`
	DescribeRetries    int      `json:"describe_retries"`
}

// PollPolicy is the polling behaviour for one category of resource
type PollPolicy struct {
	Interval time.Duration
	Timeout  time.Duration
	Retries  int
}

// Duration is a time.Duration written as a Go duration string in JSON
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string such as \"30s\": %s", err)
	}

	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}

	d.Duration = parsed
	return nil
}

// Default returns the configuration used when no config file is given
func Default() Config {
	return Config{
		Polling: Polling{
			InstanceInterval:   Duration{DefaultInstanceInterval},
			AttachmentInterval: Duration{DefaultAttachmentInterval},
			SnapshotInterval:   Duration{DefaultSnapshotInterval},
			VolumeInterval:     Duration{DefaultVolumeInterval},
			DescribeRetries:    DefaultDescribeRetries,
		},
		MaxRetries: DefaultMaxRetries,
	}
}

func NewFromReader(r io.Reader) (Config, error) {
	c := Default()

	b, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	err = json.Unmarshal(b, &c)
	if err != nil {
		return Config{}, err
	}

	c.Credentials.Region = c.Region

	err = c.validate()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}

// ResolveRegion picks the region from, in order, override, the config file,
// AWS_REGION and AWS_DEFAULT_REGION
func (c *Config) ResolveRegion(override string) error {
	candidates := []string{override, c.Region, os.Getenv("AWS_REGION"), os.Getenv("AWS_DEFAULT_REGION")}
	for _, region := range candidates {
		if region != "" {
			c.Region = region
			c.Credentials.Region = region
			return nil
		}
	}

	return errors.New("region must be specified with --region, the config file, or AWS_REGION")
}

func (c *Config) validate() error {
	if c.MaxRetries < 0 {
		return errors.New("max_retries must not be negative")
	}

	if (c.Credentials.AccessKey == "") != (c.Credentials.SecretKey == "") {
		return errors.New("access_key and secret_key must be specified together")
	}

	return c.Polling.validate()
}

func (p *Polling) validate() error {
	errs := collection.Error{}

	intervals := []struct {
		name  string
		value Duration
	}{
		{"instance_interval", p.InstanceInterval},
		{"attachment_interval", p.AttachmentInterval},
		{"snapshot_interval", p.SnapshotInterval},
		{"volume_interval", p.VolumeInterval},
	}
	for _, interval := range intervals {
		if interval.value.Duration <= 0 {
			errs.Add(fmt.Errorf("polling.%s must be positive", interval.name))
		}
	}

	timeouts := []struct {
		name  string
		value Duration
	}{
		{"instance_timeout", p.InstanceTimeout},
		{"attachment_timeout", p.AttachmentTimeout},
		{"snapshot_timeout", p.SnapshotTimeout},
		{"volume_timeout", p.VolumeTimeout},
	}
	for _, timeout := range timeouts {
		if timeout.value.Duration < 0 {
			errs.Add(fmt.Errorf("polling.%s must not be negative", timeout.name))
		}
	}

	if p.DescribeRetries < 0 {
		errs.Add(errors.New("polling.describe_retries must not be negative"))
	}

	return errs.Error()
}

func (p Polling) Instance() PollPolicy {
	return PollPolicy{Interval: p.InstanceInterval.Duration, Timeout: p.InstanceTimeout.Duration, Retries: p.DescribeRetries}
}

func (p Polling) Attachment() PollPolicy {
	return PollPolicy{Interval: p.AttachmentInterval.Duration, Timeout: p.AttachmentTimeout.Duration, Retries: p.DescribeRetries}
}

func (p Polling) Snapshot() PollPolicy {
	return PollPolicy{Interval: p.SnapshotInterval.Duration, Timeout: p.SnapshotTimeout.Duration, Retries: p.DescribeRetries}
}

func (p Polling) Volume() PollPolicy {
	return PollPolicy{Interval: p.VolumeInterval.Duration, Timeout: p.VolumeTimeout.Duration, Retries: p.DescribeRetries}
}

// GetAwsConfig resolves credentials from static keys (optionally exchanged for
// a role), or else from the SDK default chain with shared config enabled,
// optionally assuming a role from those
func (configCredentials *Credentials) GetAwsConfig() *aws.Config {
	var awsCredentials *credentials.Credentials

	if configCredentials.AccessKey != "" && configCredentials.SecretKey != "" {
		awsCredentials = credentials.NewStaticCredentialsFromCreds(
			credentials.Value{
				AccessKeyID:     configCredentials.AccessKey,
				SecretAccessKey: configCredentials.SecretKey,
				SessionToken:    configCredentials.SessionToken,
			},
		)

		if configCredentials.RoleArn != "" {
			staticConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(staticConfig)),
				configCredentials.RoleArn,
			)
		}
	} else {
		awsCredentials = ambientCredentials(configCredentials.Region)

		if configCredentials.RoleArn != "" {
			ambientConfig := aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
			awsCredentials = stscreds.NewCredentials(
				session.Must(session.NewSession(ambientConfig)),
				configCredentials.RoleArn,
			)
		}
	}

	return aws.NewConfig().WithRegion(configCredentials.Region).WithCredentials(awsCredentials)
}

// ambientCredentials honours ~/.aws/config profiles (SSO, credential_process,
// source_profile) along with the environment, credentials file and instance
// role. A broken shared config falls back to the plain chain.
func ambientCredentials(region string) *credentials.Credentials {
	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *aws.NewConfig().WithRegion(region),
		SharedConfigState: session.SharedConfigEnable,
	})
	if err == nil {
		return sess.Config.Credentials
	}

	return credentials.NewChainCredentials([]credentials.Provider{
		&credentials.EnvProvider{},
		&credentials.SharedCredentialsProvider{},
		&ec2rolecreds.EC2RoleProvider{
			Client: ec2metadata.New(session.Must(session.NewSession())),
		},
	})
}
