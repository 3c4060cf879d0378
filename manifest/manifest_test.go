package manifest_test

import (
	"bytes"
	"errors"

	"ebs-volume-resizer/manifest"
	"ebs-volume-resizer/resizer"
	"ebs-volume-resizer/resources"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	yaml "gopkg.in/yaml.v2"
)

var _ = Describe("Manifest", func() {
	var result *resizer.Result

	BeforeEach(func() {
		result = &resizer.Result{
			Instance:  resources.Instance{ID: "i-0abc", Name: "EC2-X01-0001"},
			Device:    "/dev/sda1",
			OldVolume: resources.Volume{ID: "vol-old", SizeGiB: 20, Type: "gp3", AvailabilityZone: "us-east-1a"},
			Snapshot:  resources.Snapshot{ID: "snap-0001", State: resources.SnapshotStateCompleted},
			NewVolume: resources.Volume{ID: "vol-new", SizeGiB: 40, Type: "gp3", AvailabilityZone: "us-east-1a"},
			Stopped:   true,
			Detached:  true,
			Attached:  true,
			Started:   true,
			Completed: true,
		}
	})

	Context("reading and writing the manifest", func() {
		It("writes the expected YAML file", func() {
			m := manifest.FromResult("resize-1234", "us-east-1", result, nil)

			writer := &bytes.Buffer{}
			err := m.Write(writer)
			Expect(err).ToNot(HaveOccurred())

			raw := map[string]interface{}{}
			Expect(yaml.Unmarshal(writer.Bytes(), &raw)).To(Succeed())
			Expect(raw).To(HaveKeyWithValue("run_id", "resize-1234"))
			Expect(raw).To(HaveKeyWithValue("completed", true))
			Expect(raw).ToNot(HaveKey("error"))

			resultManifest, err := manifest.NewFromReader(writer)
			Expect(err).ToNot(HaveOccurred())
			Expect(resultManifest).To(Equal(m))
		})

		It("returns an error for malformed YAML", func() {
			_, err := manifest.NewFromReader(bytes.NewBufferString("run_id: [unterminated"))
			Expect(err).To(MatchError(ContainSubstring("unmarshaling YAML to manifest")))
		})
	})

	Context("after a completed resize", func() {
		It("lists the snapshot and the original volume for deletion", func() {
			m := manifest.FromResult("run", "", result, nil)

			Expect(m.Instance).To(Equal(manifest.InstanceRecord{ID: "i-0abc", Name: "EC2-X01-0001", Device: "/dev/sda1"}))
			Expect(m.OldVolume.Attached).To(BeFalse())
			Expect(m.NewVolume.Attached).To(BeTrue())
			Expect(m.PendingCleanup).To(HaveLen(2))
			Expect(m.PendingCleanup[0].Kind).To(Equal("snapshot"))
			Expect(m.PendingCleanup[0].ID).To(Equal("snap-0001"))
			Expect(m.PendingCleanup[1].ID).To(Equal("vol-old"))
			Expect(m.PendingCleanup[1].Note).To(ContainSubstring("20 GiB"))
		})
	})

	Context("when the run stopped between detach and attach", func() {
		It("puts the detached volume first", func() {
			result.Attached = false
			result.Started = false
			result.Completed = false

			m := manifest.FromResult("run", "", result, errors.New("attach failed"))

			Expect(m.Error).To(Equal("attach failed"))
			Expect(m.Completed).To(BeFalse())
			Expect(m.PendingCleanup[0].ID).To(Equal("vol-old"))
			Expect(m.PendingCleanup[0].Note).To(ContainSubstring("detached from i-0abc at /dev/sda1"))
			Expect(m.PendingCleanup).To(ContainElement(manifest.CleanupItem{
				Kind: "volume",
				ID:   "vol-new",
				Note: "resized volume that was never attached",
			}))
		})
	})

	Context("when the run failed before creating anything", func() {
		It("records only the error", func() {
			m := manifest.FromResult("run", "", &resizer.Result{}, errors.New("resolving instance x: not found"))

			Expect(m.OldVolume).To(BeNil())
			Expect(m.Snapshot).To(BeNil())
			Expect(m.NewVolume).To(BeNil())
			Expect(m.PendingCleanup).To(BeEmpty())
		})
	})
})
