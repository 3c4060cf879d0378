package uuid_test

import (
	"ebs-volume-resizer/uuid"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("New", func() {
	It("returns a new uuid with prefix", func() {
		id := uuid.New("resize")
		Expect(id).To(MatchRegexp(`^resize-[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`))
	})

	It("returns a new uuid without prefix", func() {
		id := uuid.New("")
		Expect(id).To(HaveLen(36))
	})

	It("returns a different uuid on each call", func() {
		Expect(uuid.New("")).ToNot(Equal(uuid.New("")))
	})
})
