package integration_test

import (
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Normalize Command", func() {

	It("should collapse whitespace to single spaces", func() {
		command := exec.Command(pathToCLI, "normalize", "  2\t4 * * *\nAsia/Shanghai  ")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say(`2 4 \* \* \* Asia/Shanghai`))
	})

	It("should require exactly one argument", func() {
		command := exec.Command(pathToCLI, "normalize")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(1))
	})
})

var _ = Describe("Version Command", func() {

	It("should print the version", func() {
		command := exec.Command(pathToCLI, "version")
		session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())

		Eventually(session).Should(gexec.Exit(0))
		Expect(session.Out).To(gbytes.Say("cronexpr"))
	})
})
