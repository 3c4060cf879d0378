package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"ebs-volume-resizer/config"
	"ebs-volume-resizer/driver"
	"ebs-volume-resizer/driverset"
	"ebs-volume-resizer/manifest"
	"ebs-volume-resizer/prompt"
	"ebs-volume-resizer/resizer"
	"ebs-volume-resizer/uuid"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type options struct {
	instanceName string
	instanceID   string
	volumeID     string
	sizeGiB      int64
	configPath   string
	region       string
	manifestPath string
	yes          bool
	debug        bool
}

func main() {
	sharedWriter := &logWriter{
		writer: os.Stderr,
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: sharedWriter, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := newRootCommand(&logger, os.Stdin, sharedWriter)
	err := cmd.ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, resizer.ErrDeclined):
		logger.Info().Msg("aborted by operator, nothing further was changed")
	default:
		logger.Error().Msg(err.Error())
		os.Exit(1)
	}
}

func newRootCommand(logger *zerolog.Logger, stdin io.Reader, promptOut io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ebs-volume-resizer",
		Short: "Grow an EC2 instance's EBS volume by restoring a snapshot into a larger volume",
		Long: `Grow an EC2 instance's EBS volume.

The instance is stopped, the volume is snapshotted, a larger volume is restored
from the snapshot in the same zone and swapped in at the same device, and the
instance is started again. The original volume and the snapshot are kept for
the operator to delete once the resized volume has been verified.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// required and grouped flags are validated by cobra before RunE
			if opts.sizeGiB <= 0 {
				return fmt.Errorf("--size must be a positive number of GiB, got %d", opts.sizeGiB)
			}

			cmd.SilenceUsage = true
			if opts.debug {
				*logger = logger.Level(zerolog.DebugLevel)
			}
			return run(cmd.Context(), *logger, opts, stdin, promptOut)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.instanceName, "instance-name", "", "Name tag of the instance to resize")
	flags.StringVar(&opts.instanceID, "instance-id", "", "ID of the instance to resize")
	flags.Int64Var(&opts.sizeGiB, "size", 0, "New size of the volume in GiB, larger than the current size")
	flags.StringVar(&opts.volumeID, "volume-id", "", "Volume to resize (defaults to the instance's root volume)")
	flags.StringVar(&opts.configPath, "config", "", "Path to the JSON configuration file")
	flags.StringVar(&opts.region, "region", "", "AWS region (overrides the config file and AWS_REGION)")
	flags.StringVar(&opts.manifestPath, "manifest", "", "Write a YAML manifest of the run to this path")
	flags.BoolVarP(&opts.yes, "yes", "y", false, "Approve every confirmation without asking")
	flags.BoolVar(&opts.debug, "debug", false, "Log debug output, including AWS requests")

	cmd.MarkFlagsMutuallyExclusive("instance-name", "instance-id")
	cmd.MarkFlagsOneRequired("instance-name", "instance-id")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

func run(ctx context.Context, logger zerolog.Logger, opts *options, stdin io.Reader, promptOut io.Writer) error {
	c, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	err = c.ResolveRegion(opts.region)
	if err != nil {
		return err
	}

	ec2Client, err := driver.NewEC2Client(logger, c, opts.debug)
	if err != nil {
		return err
	}

	var confirmer prompt.Confirmer = prompt.NewTerminal(stdin, promptOut)
	if opts.yes {
		confirmer = prompt.NewAutoApprove(logger)
	}

	runID := uuid.New("resize")
	logger = logger.With().Str("run_id", runID).Logger()
	logger.Info().Msgf("resizing in %s", c.Region)

	ds := driverset.NewResizeDriverSet(logger, ec2Client, c.Polling)
	result, resizeErr := resizer.NewResizer(logger, confirmer).Resize(ctx, ds, resizer.Request{
		InstanceName: opts.instanceName,
		InstanceID:   opts.instanceID,
		VolumeID:     opts.volumeID,
		SizeGiB:      opts.sizeGiB,
	})

	m := manifest.FromResult(runID, c.Region, result, resizeErr)
	summarize(logger, m)

	if opts.manifestPath != "" {
		err = writeManifest(opts.manifestPath, m)
		if err != nil {
			logger.Error().Err(err).Msg("writing manifest")
		}
	}

	return resizeErr
}

func loadConfig(configPath string) (config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}

	configFile, err := os.Open(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("opening config file: %s", err)
	}
	defer configFile.Close() //nolint:errcheck

	c, err := config.NewFromReader(configFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("parsing config file: %s. Message: %s", configPath, err)
	}

	return c, nil
}

func summarize(logger zerolog.Logger, m *manifest.Manifest) {
	if m.Completed {
		logger.Info().Msgf("volume %s (%d GiB) is attached to %s at %s",
			m.NewVolume.ID, m.NewVolume.SizeGiB, m.Instance.ID, m.Instance.Device)
	}

	for _, item := range m.PendingCleanup {
		logger.Warn().Str("kind", item.Kind).Str("id", item.ID).Msg(item.Note)
	}
}

func writeManifest(path string, m *manifest.Manifest) error {
	manifestFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating manifest: %s", err)
	}

	err = m.Write(manifestFile)
	if err != nil {
		_ = manifestFile.Close()
		return err
	}

	return manifestFile.Close()
}

type logWriter struct {
	sync.Mutex
	writer io.Writer
}

func (l *logWriter) Write(message []byte) (int, error) {
	l.Lock()
	defer l.Unlock()

	return l.writer.Write(message)
}
