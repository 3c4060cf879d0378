package prompt_test

import (
	"bytes"
	"strings"

	"ebs-volume-resizer/prompt"

	"github.com/rs/zerolog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Terminal", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = &bytes.Buffer{}
	})

	confirm := func(input string) bool {
		ok, err := prompt.NewTerminal(strings.NewReader(input), out).Confirm("Stop instance i-1?")
		Expect(err).ToNot(HaveOccurred())
		return ok
	}

	It("prints the question with the default answer", func() {
		confirm("y\n")
		Expect(out.String()).To(Equal("Stop instance i-1? [y/N]: "))
	})

	DescribeTable("answers",
		func(input string, expected bool) {
			Expect(confirm(input)).To(Equal(expected))
		},
		Entry("y approves", "y\n", true),
		Entry("YES approves", " YES \n", true),
		Entry("n declines", "n\n", false),
		Entry("an empty line declines", "\n", false),
		Entry("end of input declines", "", false),
		Entry("a final answer without newline counts", "yes", true),
	)

	It("asks again after an unrecognised answer", func() {
		Expect(confirm("maybe\ny\n")).To(BeTrue())
		Expect(out.String()).To(ContainSubstring("please answer y or n"))
		Expect(strings.Count(out.String(), "[y/N]")).To(Equal(2))
	})

	It("declines when input ends after an unrecognised answer", func() {
		Expect(confirm("maybe")).To(BeFalse())
	})
})

var _ = Describe("AutoApprove", func() {
	It("approves and logs the question", func() {
		logs := &bytes.Buffer{}
		ok, err := prompt.NewAutoApprove(zerolog.New(logs)).Confirm("Start instance i-1?")
		Expect(err).ToNot(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(logs.String()).To(ContainSubstring("Start instance i-1?"))
	})
})
