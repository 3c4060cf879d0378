package driver

import (
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-sdk-go/aws/request"
)

// Error codes EC2 returns for a resource that was created moments ago but is
// not yet visible to every endpoint
const (
	ErrCodeSnapshotNotFound = "InvalidSnapshot.NotFound"
	ErrCodeVolumeNotFound   = "InvalidVolume.NotFound"
)

func NewEC2RetryerWithRetries(numRetries int) EC2Retryer {
	return EC2Retryer{client.DefaultRetryer{NumMaxRetries: numRetries}}
}

// EC2Retryer handles more error conditions than the default retryer when
// tagging resources that were just created
type EC2Retryer struct {
	client.DefaultRetryer
}

// MaxRetries returns the configured number of NumMaxRetries, defaults to 3
func (r EC2Retryer) MaxRetries() int {
	if r.NumMaxRetries <= 0 {
		return 3
	}
	return r.NumMaxRetries
}

// ShouldRetry retries NotFound errors from CreateTags, which EC2 returns until
// a new snapshot or volume has propagated. EC2Retryer will check for this
// before invoking DefaultRetryer.ShouldRetry
func (r EC2Retryer) ShouldRetry(req *request.Request) bool {
	if req.Error != nil && req.Operation != nil && req.Operation.Name == "CreateTags" {
		if err, ok := req.Error.(awserr.Error); ok {
			switch err.Code() {
			case ErrCodeSnapshotNotFound, ErrCodeVolumeNotFound:
				return true
			}
		}
	}
	return r.DefaultRetryer.ShouldRetry(req)
}
