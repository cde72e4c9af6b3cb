package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/robotnik-ag/robotnik/internal/estimation/calculators"
	"github.com/robotnik-ag/robotnik/internal/service"
)

var _ = Describe("EstimationService", func() {
	var (
		estimationSrv *service.EstimationService
		ctx           context.Context
	)

	BeforeEach(func() {
		estimationSrv = service.NewEstimationService(estimation.DefaultCatalog())
		ctx = context.Background()
	})

	Describe("Calculate", func() {
		It("uses the default profile when none is given", func() {
			result, err := estimationSrv.Calculate(ctx, "", []estimation.Param{
				{Key: calculators.ParamLandSize, Value: 30.0},
				{Key: calculators.ParamRobotCount, Value: 1.0},
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Profile).To(Equal(estimation.ProfileROI))
			Expect(result.Report.Output.RobotDaysNeeded).To(Equal(11))
			Expect(result.Report.Output.ManualDaysNeeded).To(Equal(30))
			Expect(result.Report.Output.SavingsPerSeason).To(Equal(3980.0))
			Expect(result.Display.SavingsPerSeason).To(Equal("€3,980"))
			Expect(result.Display.PaybackYears).To(Equal("2.5"))
			Expect(result.Report.Breakdown).To(HaveLen(5))
		})

		It("applies the defaults of the selected profile", func() {
			result, err := estimationSrv.Calculate(ctx, estimation.ProfileImpact, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Report.Output.RobotCount).To(Equal(100))
			Expect(result.Report.Output.HumansLiberated).To(Equal(1933))
			Expect(result.Report.Breakdown["Environmental Impact"].Defaulted).To(ConsistOf(calculators.ParamRobotCount))
		})

		It("returns ErrProfileNotFound for an unknown profile", func() {
			result, err := estimationSrv.Calculate(ctx, "orchard", nil)
			Expect(result).To(BeNil())
			var notFound *service.ErrProfileNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("orchard"))
		})

		It("serves profiles loaded from a file", func() {
			loaded, err := estimation.ParseProfiles([]byte("profiles:\n  - name: greenhouse\n    defaults:\n      landSize: 5\n"))
			Expect(err).ToNot(HaveOccurred())
			catalog, err := estimation.NewCatalog(estimation.ProfileROI, append([]estimation.Profile{estimation.ROIProfile()}, loaded...)...)
			Expect(err).ToNot(HaveOccurred())

			srv := service.NewEstimationService(catalog)
			result, err := srv.Calculate(ctx, "greenhouse", nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(result.Report.Output.LandSize).To(Equal(5.0))
			Expect(srv.Profiles()).To(HaveLen(2))
			Expect(srv.DefaultProfile()).To(Equal(estimation.ProfileROI))
		})
	})
})
