package manifest

import (
	"fmt"
	"io"

	"ebs-volume-resizer/resizer"
	"ebs-volume-resizer/resources"

	"gopkg.in/yaml.v2"
)

// Manifest records the resources a resize run touched, so an operator can
// verify the result and clean up afterwards. Nothing is deleted by the tool.
type Manifest struct {
	RunID          string          `yaml:"run_id"`
	Region         string          `yaml:"region,omitempty"`
	Instance       InstanceRecord  `yaml:"instance"`
	OldVolume      *VolumeRecord   `yaml:"old_volume,omitempty"`
	Snapshot       *SnapshotRecord `yaml:"snapshot,omitempty"`
	NewVolume      *VolumeRecord   `yaml:"new_volume,omitempty"`
	Completed      bool            `yaml:"completed"`
	Error          string          `yaml:"error,omitempty"`
	PendingCleanup []CleanupItem   `yaml:"pending_cleanup,omitempty"`
}

type InstanceRecord struct {
	ID     string `yaml:"id,omitempty"`
	Name   string `yaml:"name,omitempty"`
	Device string `yaml:"device,omitempty"`
}

type VolumeRecord struct {
	ID               string `yaml:"id"`
	SizeGiB          int64  `yaml:"size_gib,omitempty"`
	Type             string `yaml:"type,omitempty"`
	AvailabilityZone string `yaml:"availability_zone,omitempty"`
	Attached         bool   `yaml:"attached"`
}

type SnapshotRecord struct {
	ID    string `yaml:"id"`
	State string `yaml:"state,omitempty"`
}

// CleanupItem is a resource left for the operator to review
type CleanupItem struct {
	Kind string `yaml:"kind"`
	ID   string `yaml:"id"`
	Note string `yaml:"note"`
}

// FromResult builds the manifest of a run that ended with runErr, which is nil
// for a completed run
func FromResult(runID, region string, result *resizer.Result, runErr error) *Manifest {
	m := &Manifest{RunID: runID, Region: region}
	if runErr != nil {
		m.Error = runErr.Error()
	}
	if result == nil {
		return m
	}

	m.Completed = result.Completed
	m.Instance = InstanceRecord{ID: result.Instance.ID, Name: result.Instance.Name, Device: result.Device}

	if result.OldVolume.ID != "" {
		m.OldVolume = volumeRecord(result.OldVolume, !result.Detached)
	}
	if result.Snapshot.ID != "" {
		m.Snapshot = &SnapshotRecord{ID: result.Snapshot.ID, State: result.Snapshot.State}
	}
	if result.NewVolume.ID != "" {
		m.NewVolume = volumeRecord(result.NewVolume, result.Attached)
	}

	m.PendingCleanup = pendingCleanup(result)
	return m
}

func volumeRecord(v resources.Volume, attached bool) *VolumeRecord {
	return &VolumeRecord{
		ID:               v.ID,
		SizeGiB:          v.SizeGiB,
		Type:             v.Type,
		AvailabilityZone: v.AvailabilityZone,
		Attached:         attached,
	}
}

func pendingCleanup(result *resizer.Result) []CleanupItem {
	var items []CleanupItem

	if result.Detached && !result.Attached {
		items = append(items, CleanupItem{
			Kind: "volume",
			ID:   result.OldVolume.ID,
			Note: fmt.Sprintf("detached from %s at %s, attach it or the new volume there before starting the instance", result.Instance.ID, result.Device),
		})
	}

	if result.Snapshot.ID != "" {
		note := "snapshot of the original volume, delete once the resized volume is verified"
		if result.NewVolume.ID == "" {
			note = "snapshot of the original volume, no volume was restored from it"
		}
		items = append(items, CleanupItem{Kind: "snapshot", ID: result.Snapshot.ID, Note: note})
	}

	if result.Attached && result.OldVolume.ID != "" {
		items = append(items, CleanupItem{
			Kind: "volume",
			ID:   result.OldVolume.ID,
			Note: fmt.Sprintf("original %d GiB volume, delete once the resized volume is verified", result.OldVolume.SizeGiB),
		})
	}

	if result.NewVolume.ID != "" && !result.Attached {
		items = append(items, CleanupItem{
			Kind: "volume",
			ID:   result.NewVolume.ID,
			Note: "resized volume that was never attached",
		})
	}

	return items
}

// NewFromReader reads a manifest previously written with Write
func NewFromReader(reader io.Reader) (*Manifest, error) {
	manifestBytes, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %s", err)
	}
	m := &Manifest{}
	err = yaml.Unmarshal(manifestBytes, m)
	if err != nil {
		return nil, fmt.Errorf("unmarshaling YAML to manifest: %s", err)
	}
	return m, nil
}

// Write writes the YAML representation of this manifest to the io.Writer
func (m *Manifest) Write(writer io.Writer) error {
	output, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest to YAML: %s", err)
	}
	_, err = writer.Write(output)
	if err != nil {
		return fmt.Errorf("writing YAML: %s", err)
	}
	return nil
}
