package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/robotnik-ag/robotnik/internal/estimation"
	"github.com/robotnik-ag/robotnik/internal/estimation/calculators"
	"github.com/robotnik-ag/robotnik/internal/handlers/v1alpha1/mappers"
	"github.com/robotnik-ag/robotnik/internal/presenter"
	"github.com/robotnik-ag/robotnik/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type CalculateOptions struct {
	GlobalOptions

	LandSize       string
	RobotCount     string
	PesticideUsage string
	Output         string
}

func DefaultCalculateOptions() *CalculateOptions {
	return &CalculateOptions{
		GlobalOptions: DefaultGlobalOptions(),
		Output:        textFormat,
	}
}

func NewCmdCalculate() *cobra.Command {
	o := DefaultCalculateOptions()
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Estimate coverage, costs and environmental impact of a robot fleet.",
		Example: `  # savings of two robots on 45 decares
  robotnik calculate --land-size 45 --robots 2

  # season impact of the default fleet
  robotnik calculate --profile impact --pesticide-usage 0.4 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Complete(cmd, args); err != nil {
				return err
			}
			if err := o.Validate(args); err != nil {
				return err
			}
			return o.Run(cmd.Context(), args)
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CalculateOptions) Bind(fs *pflag.FlagSet) {
	o.GlobalOptions.Bind(fs)

	fs.StringVar(&o.LandSize, "land-size", o.LandSize, "Land to weed, in decares. The profile default is used when empty or invalid.")
	fs.StringVar(&o.RobotCount, "robots", o.RobotCount, "Number of robots. The profile default is used when empty or invalid.")
	fs.StringVar(&o.PesticideUsage, "pesticide-usage", o.PesticideUsage, "Pesticide usage rate in kg per decare per year.")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *CalculateOptions) Complete(cmd *cobra.Command, args []string) error {
	return o.GlobalOptions.Complete(cmd, args)
}

func (o *CalculateOptions) Validate(args []string) error {
	if err := o.GlobalOptions.Validate(args); err != nil {
		return err
	}
	return validateOutput(o.Output)
}

// params keeps the text field semantics of the web form: unparseable values are left out.
func (o *CalculateOptions) params() []estimation.Param {
	var params []estimation.Param
	add := func(key, raw string) {
		if v, ok := presenter.ParseNumber(raw); ok {
			params = append(params, estimation.Param{Key: key, Value: v})
		}
	}
	add(calculators.ParamLandSize, o.LandSize)
	add(calculators.ParamRobotCount, o.RobotCount)
	add(calculators.ParamPesticideUsageRate, o.PesticideUsage)
	return params
}

func (o *CalculateOptions) Run(ctx context.Context, args []string) error {
	catalog, err := o.Catalog()
	if err != nil {
		return err
	}

	params := o.params()
	result, err := service.NewEstimationService(catalog).Calculate(ctx, o.Profile, params)
	if err != nil {
		return err
	}

	response := mappers.EstimationResultToAPI(*result, params)
	if ok, err := printStructured(o.out, o.Output, response); ok {
		return err
	}

	out, d := result.Report.Output, result.Display
	w := tabwriter.NewWriter(o.out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "PROFILE\t%s\n", result.Profile)
	fmt.Fprintf(w, "LAND SIZE\t%g decares\n", out.LandSize)
	fmt.Fprintf(w, "ROBOTS\t%d\n", out.RobotCount)
	fmt.Fprintf(w, "ROBOT DAYS\t%s\n", d.RobotDays)
	fmt.Fprintf(w, "MANUAL DAYS\t%s\n", d.ManualDays)
	fmt.Fprintf(w, "SPEED\t%s\n", d.SpeedMultiplier)
	fmt.Fprintf(w, "ROBOT SHIFTS\t%s (%s hours)\n", d.RobotShifts, d.RobotHours)
	fmt.Fprintf(w, "ROBOT COST PER SEASON\t%s\n", d.RobotCostPerSeason)
	fmt.Fprintf(w, "MANUAL COST PER SEASON\t%s\n", d.ManualCostPerSeason)
	fmt.Fprintf(w, "SAVINGS PER SEASON\t%s\n", d.SavingsPerSeason)
	fmt.Fprintf(w, "PAYBACK (YEARS)\t%s\n", d.PaybackYears)
	fmt.Fprintf(w, "AREA COVERED PER SEASON\t%s decares\n", d.TotalAreaCovered)
	fmt.Fprintf(w, "PESTICIDES SAVED\t%s kg\n", d.PesticidesSaved)
	fmt.Fprintf(w, "HUMANS LIBERATED\t%s\n", d.HumansLiberated)
	fmt.Fprintf(w, "PESTICIDE SAVED BY USAGE\t%s\n", d.PesticideSavedByUsage)
	return w.Flush()
}
