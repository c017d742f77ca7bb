package integration_test

import (
	"encoding/json"
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("Next Command", func() {

	Describe("Basic Usage", func() {
		Context("when user previews firings from a fixed instant", func() {
			It("should show the requested number of firings", func() {
				command := exec.Command(pathToCLI, "next", "2 4 * * * Asia/Shanghai",
					"--from", "2024-09-11T19:08:35+08:00", "--count", "3")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("Next 3 runs"))
				Expect(session.Out).To(gbytes.Say("1\\. 2024-09-12T04:02:00\\+08:00"))
				Expect(session.Out).To(gbytes.Say("2\\. 2024-09-13T04:02:00\\+08:00"))
				Expect(session.Out).To(gbytes.Say("3\\. 2024-09-14T04:02:00\\+08:00"))
			})

			It("should respect the short count flag", func() {
				command := exec.Command(pathToCLI, "next", "0 0 1 1 * UTC",
					"--from", "2024-01-01T00:00:00Z", "-c", "1")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("Next 1 run"))
				Expect(session.Out).To(gbytes.Say("1\\. 2025-01-01T00:00:00Z"))
			})

			It("should default to now without --from", func() {
				command := exec.Command(pathToCLI, "next", "* * * * * UTC", "-c", "1")
				session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
				Expect(err).NotTo(HaveOccurred())

				Eventually(session).Should(gexec.Exit(0))
				Expect(session.Out).To(gbytes.Say("Next 1 run"))
			})
		})
	})

	Describe("Quartz Constructs", func() {
		It("should handle nearest weekday at the month boundary", func() {
			command := exec.Command(pathToCLI, "next", "3 11 31W * * Asia/Shanghai",
				"--from", "2025-05-01T00:00:00+08:00", "-c", "1")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("1\\. 2025-05-30T11:03:00\\+08:00"))
		})

		It("should handle last weekday of month", func() {
			command := exec.Command(pathToCLI, "next", "4 2 * * 1L Asia/Shanghai",
				"--from", "2024-09-24T00:08:35+08:00", "-c", "2")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))
			Expect(session.Out).To(gbytes.Say("1\\. 2024-09-30T02:04:00\\+08:00"))
			Expect(session.Out).To(gbytes.Say("2\\. 2024-10-28T02:04:00\\+08:00"))
		})
	})

	Describe("JSON Output", func() {
		It("should emit well-formed JSON", func() {
			command := exec.Command(pathToCLI, "next", "0 18 * * TUE#1 Asia/Shanghai",
				"--from", "2024-09-24T00:08:35+08:00", "-c", "2", "--json")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(0))

			var result struct {
				Expression string `json:"expression"`
				Timezone   string `json:"timezone"`
				Firings    []struct {
					Number    int    `json:"number"`
					Local     string `json:"local"`
					Timestamp string `json:"timestamp"`
				} `json:"firings"`
			}
			Expect(json.Unmarshal(session.Out.Contents(), &result)).To(Succeed())
			Expect(result.Expression).To(Equal("0 18 * * TUE#1 Asia/Shanghai"))
			Expect(result.Timezone).To(Equal("Asia/Shanghai"))
			Expect(result.Firings).To(HaveLen(2))
			Expect(result.Firings[0].Local).To(Equal("2024-10-01T18:00:00+08:00"))
			Expect(result.Firings[0].Timestamp).To(Equal("2024-10-01T10:00:00Z"))
		})
	})

	Describe("Error Handling", func() {
		It("should reject an invalid expression with a caret diagnostic", func() {
			command := exec.Command(pathToCLI, "next", "10086 * * * * Asia/Shanghai")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("failed to parse crontab expression"))
			Expect(session.Err).To(gbytes.Say(`\^ value must be in range 0\.\.=59; found 10086`))
		})

		It("should report unsatisfiable schedules", func() {
			command := exec.Command(pathToCLI, "next", "0 0 30 2 * UTC",
				"--from", "2024-01-01T00:00:00Z", "-c", "1")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("failed to find next timestamp in four years"))
		})

		It("should reject an out of range count", func() {
			command := exec.Command(pathToCLI, "next", "* * * * * UTC", "--count", "500")
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).NotTo(HaveOccurred())

			Eventually(session).Should(gexec.Exit(1))
			Expect(session.Err).To(gbytes.Say("count must be at most 100"))
		})
	})
})
