package waiter_test

import (
	"bytes"
	"context"
	"errors"
	"time"

	"ebs-volume-resizer/waiter"

	"github.com/rs/zerolog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type statusInfo string

func (i statusInfo) Status() string {
	return string(i)
}

type progressInfo struct {
	status   string
	progress string
}

func (i progressInfo) Status() string {
	return i.status
}

func (i progressInfo) Progress() string {
	return i.progress
}

var _ = Describe("StatusWaiter", func() {
	statusRetries := 2

	var config waiter.WaiterConfig

	BeforeEach(func() {
		config = waiter.WaiterConfig{
			Resource:      waiter.ID("some-resource-id"),
			DesiredStatus: "desired",
			PollInterval:  10 * time.Millisecond,
			PollRetries:   statusRetries,
			Logger:        zerolog.New(GinkgoWriter),
		}
	})

	Context("when the status fetcher returns an error", func() {
		It("retries a configurable amount of times", func() {
			count := 0
			errorFetcher := func(_ context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
				if count < statusRetries {
					count++
					return nil, errors.New("this returns an error")
				}

				return statusInfo("desired"), nil
			}

			_, err := waiter.WaitForStatus(context.Background(), errorFetcher, config)
			Expect(err).ToNot(HaveOccurred())
			Expect(count).To(Equal(statusRetries))
		})

		It("returns the underlying error when the retry count is exceeded", func() {
			calls := 0
			errorFetcher := func(_ context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
				calls++
				return nil, errors.New("this returns an error")
			}

			_, err := waiter.WaitForStatus(context.Background(), errorFetcher, config)
			Expect(err).To(MatchError("this returns an error"))
			Expect(calls).To(Equal(statusRetries + 1))
		})

		It("only counts consecutive errors", func() {
			calls := 0
			flakyFetcher := func(_ context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
				calls++
				switch {
				case calls >= 8:
					return statusInfo("desired"), nil
				case calls%2 == 0:
					return statusInfo("pending"), nil
				default:
					return nil, errors.New("flaky")
				}
			}

			_, err := waiter.WaitForStatus(context.Background(), flakyFetcher, config)
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Context("when the status fetcher returns the desired status", func() {
		It("returns the status without waiting for the first interval", func() {
			config.PollInterval = time.Hour
			statusFetcher := func(_ context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
				Expect(resource.ID()).To(Equal("some-resource-id"))
				return statusInfo("desired"), nil
			}

			info, err := waiter.WaitForStatus(context.Background(), statusFetcher, config)
			Expect(err).ToNot(HaveOccurred())
			Expect(info.Status()).To(Equal("desired"))
		})
	})

	Context("when the status fetcher returns a failure status", func() {
		It("returns a FailedStatusError", func() {
			config.FailureStatuses = []string{"error"}
			statusFetcher := func(_ context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
				return statusInfo("error"), nil
			}

			_, err := waiter.WaitForStatus(context.Background(), statusFetcher, config)
			Expect(err).To(MatchError("resource some-resource-id entered failure status error"))

			var failed waiter.FailedStatusError
			Expect(errors.As(err, &failed)).To(BeTrue())
			Expect(failed.Status).To(Equal("error"))
		})
	})

	Context("when waiting times out", func() {
		It("returns a timeout error", func() {
			config.PollTimeout = 50 * time.Millisecond
			statusFetcher := func(_ context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
				return statusInfo("undesired"), nil
			}

			_, err := waiter.WaitForStatus(context.Background(), statusFetcher, config)
			Expect(err).To(MatchError("timed out after 50ms polling on resource some-resource-id"))
		})
	})

	Context("when the context is cancelled", func() {
		It("stops polling and returns the context error", func() {
			ctx, cancel := context.WithCancel(context.Background())
			calls := 0
			statusFetcher := func(_ context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
				calls++
				if calls == 3 {
					cancel()
				}
				return statusInfo("undesired"), nil
			}

			_, err := waiter.WaitForStatus(ctx, statusFetcher, config)
			Expect(err).To(MatchError(context.Canceled))
			Expect(calls).To(Equal(3))
		})
	})

	Context("when the resource reports progress", func() {
		It("logs each change of progress once", func() {
			logs := &bytes.Buffer{}
			config.Logger = zerolog.New(logs)

			sequence := []progressInfo{
				{"pending", "0%"},
				{"pending", "0%"},
				{"pending", "40%"},
				{"desired", "100%"},
			}
			calls := 0
			statusFetcher := func(_ context.Context, resource waiter.StatusResource) (waiter.StatusInfo, error) {
				info := sequence[calls]
				calls++
				return info, nil
			}

			_, err := waiter.WaitForStatus(context.Background(), statusFetcher, config)
			Expect(err).ToNot(HaveOccurred())
			Expect(logs.String()).To(ContainSubstring(`"progress":"40%"`))
			Expect(bytes.Count(logs.Bytes(), []byte("status changed"))).To(Equal(3))
		})
	})
})
