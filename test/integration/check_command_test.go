package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Check Command", func() {

	writeScheduleFile := func(content string) string {
		path := filepath.Join(GinkgoT().TempDir(), "schedules.cron")
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Describe("Single Expression", func() {
		It("should accept a valid expression", func() {
			command := exec.Command(pathToCLI, "check", "3 11 17W,L * * Asia/Shanghai")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("1 checked, 0 invalid"))
		})

		It("should reject an invalid expression and exit non-zero", func() {
			command := exec.Command(pathToCLI, "check", "* 5-4 * * * Asia/Shanghai")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out).To(gbytes.Say("range must be in ascending order; found 5-4"))
			Expect(session.Out).To(gbytes.Say("1 checked, 1 invalid"))
		})
	})

	Describe("Schedule Files", func() {
		It("should validate every expression line", func() {
			path := writeScheduleFile("# jobs\n0 18 * * 1-5 Asia/Shanghai\n61 * * * * UTC\n")

			command := exec.Command(pathToCLI, "check", "--file", path)
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out).To(gbytes.Say("line 3:"))
			Expect(session.Out).To(gbytes.Say("2 checked, 1 invalid"))
		})

		It("should pass a clean file", func() {
			path := writeScheduleFile("0 0 * * * UTC\n3 11 L * * Asia/Shanghai\n")

			command := exec.Command(pathToCLI, "check", "--file", path)
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("2 checked, 0 invalid"))
		})

		It("should emit JSON when asked", func() {
			path := writeScheduleFile("bogus\n")

			command := exec.Command(pathToCLI, "check", "--file", path, "--json")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Out).To(gbytes.Say(`"checked": 1`))
			Expect(session.Out).To(gbytes.Say(`"invalid": 1`))
		})

		It("should fail on a missing file", func() {
			command := exec.Command(pathToCLI, "check", "--file", "/does/not/exist.cron")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("failed to open schedule file"))
		})
	})
})
