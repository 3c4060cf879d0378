package collection_test

import (
	"ebs-volume-resizer/collection"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tags", func() {
	var tags collection.Tags

	BeforeEach(func() {
		tags = collection.NewTags(
			collection.Tag{Key: "Name", Value: "EC2-X01-0001"},
			collection.Tag{Key: "team", Value: "storage"},
		)
	})

	It("keeps keys unique, overwriting the previous value", func() {
		tags.Set("team", "platform")

		Expect(tags.Len()).To(Equal(2))
		value, ok := tags.Get("team")
		Expect(ok).To(BeTrue())
		Expect(value).To(Equal("platform"))
	})

	It("preserves insertion order", func() {
		tags.Set("cost-center", "42")

		Expect(tags.All()).To(Equal([]collection.Tag{
			{Key: "Name", Value: "EC2-X01-0001"},
			{Key: "team", Value: "storage"},
			{Key: "cost-center", Value: "42"},
		}))
	})

	It("returns copies that do not share storage with the source", func() {
		copied := tags.Copy()
		copied.Set("team", "other")

		value, _ := tags.Get("team")
		Expect(value).To(Equal("storage"))

		all := tags.All()
		all[0].Value = "mutated"
		value, _ = tags.Get("Name")
		Expect(value).To(Equal("EC2-X01-0001"))
	})

	Describe("Rename", func() {
		It("moves the value to the new key", func() {
			renamed := tags.Rename("Name", "ec2Name")

			_, ok := renamed.Get("Name")
			Expect(ok).To(BeFalse())
			Expect(renamed.Map()).To(Equal(map[string]string{
				"ec2Name": "EC2-X01-0001",
				"team":    "storage",
			}))
		})

		It("leaves the source untouched", func() {
			tags.Rename("Name", "ec2Name")

			value, ok := tags.Get("Name")
			Expect(ok).To(BeTrue())
			Expect(value).To(Equal("EC2-X01-0001"))
		})

		It("returns an unchanged copy when the key is absent", func() {
			renamed := tags.Rename("missing", "other")
			Expect(renamed.All()).To(Equal(tags.All()))
		})

		It("replaces an existing value under the destination key", func() {
			tags.Set("ec2Name", "stale")
			renamed := tags.Rename("Name", "ec2Name")

			Expect(renamed.Len()).To(Equal(2))
			value, _ := renamed.Get("ec2Name")
			Expect(value).To(Equal("EC2-X01-0001"))
		})
	})

	It("drops a key with Without", func() {
		Expect(tags.Without("team").Map()).To(Equal(map[string]string{"Name": "EC2-X01-0001"}))
	})

	It("drops every key sharing a prefix with WithoutPrefix", func() {
		reserved := collection.NewTags(
			collection.Tag{Key: "Name", Value: "EC2-X01-0001"},
			collection.Tag{Key: "aws:cloudformation:stack-name", Value: "web"},
			collection.Tag{Key: "aws:autoscaling:groupName", Value: "web-asg"},
			collection.Tag{Key: "team", Value: "ops"},
		)

		Expect(reserved.WithoutPrefix("aws:").All()).To(Equal([]collection.Tag{
			{Key: "Name", Value: "EC2-X01-0001"},
			{Key: "team", Value: "ops"},
		}))
		Expect(reserved.Len()).To(Equal(4))
	})

	Describe("Split", func() {
		It("keeps every tag when the set fits", func() {
			head, rest := tags.Split(5)
			Expect(head.Map()).To(Equal(tags.Map()))
			Expect(rest).To(BeEmpty())
		})

		It("returns the overflow in order", func() {
			head, rest := tags.Split(1)
			Expect(head.All()).To(Equal([]collection.Tag{{Key: "Name", Value: "EC2-X01-0001"}}))
			Expect(rest).To(Equal([]collection.Tag{{Key: "team", Value: "storage"}}))
		})
	})

	It("builds from a map", func() {
		Expect(collection.FromMap(map[string]string{"a": "1"}).Map()).To(Equal(map[string]string{"a": "1"}))
	})
})
