package calculators

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/robotnik-ag/robotnik/internal/estimation"
)

func TestNewEngine_RegistersAllCalculators(t *testing.T) {
	t.Parallel()
	engine := NewEngine(estimation.ROIProfile())

	want := []string{"Coverage", "Costs", "Payback", "Environmental Impact", "Pesticide Usage"}
	if got := engine.Calculators(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestNewEngine_WorkedExample(t *testing.T) {
	t.Parallel()
	report := NewEngine(estimation.ROIProfile()).Run([]estimation.Param{
		{Key: ParamLandSize, Value: 30},
		{Key: ParamRobotCount, Value: 1},
	})
	out := report.Output

	if out.RobotDaysNeeded != 11 || out.ManualDaysNeeded != 30 {
		t.Errorf("expected 11/30 days, got %d/%d", out.RobotDaysNeeded, out.ManualDaysNeeded)
	}
	if out.RobotCostPerSeason != 220 || out.ManualCostPerSeason != 4200 || out.SavingsPerSeason != 3980 {
		t.Errorf("unexpected costs %v/%v/%v", out.RobotCostPerSeason, out.ManualCostPerSeason, out.SavingsPerSeason)
	}
	if v, ok := out.PaybackYears.Get(); !ok || !approx(v, 10000.0/3980.0) {
		t.Errorf("unexpected payback %v", out.PaybackYears)
	}
	if v, ok := out.SpeedMultiplier.Get(); !ok || !approx(v, 30.0/11.0) {
		t.Errorf("unexpected speed multiplier %v", out.SpeedMultiplier)
	}
	if out.PesticideSavedByUsageKg.Applicable() {
		t.Error("expected usage savings to be not applicable without a rate")
	}
	if len(report.Breakdown) != 5 {
		t.Errorf("expected 5 breakdown entries, got %d", len(report.Breakdown))
	}
}

func TestNewEngine_Deterministic(t *testing.T) {
	t.Parallel()
	engine := NewEngine(estimation.ImpactProfile())
	inputs := []estimation.Param{
		{Key: ParamLandSize, Value: "123.4"},
		{Key: ParamRobotCount, Value: "7"},
		{Key: ParamPesticideUsageRate, Value: 0.25},
	}

	first, err := json.Marshal(engine.Run(inputs))
	if err != nil {
		t.Fatal(err)
	}
	second, err := json.Marshal(engine.Run(inputs))
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("expected identical reports, got\n%s\n%s", first, second)
	}
}

func TestNewEngine_InvalidInputsNeverFail(t *testing.T) {
	t.Parallel()
	engine := NewEngine(estimation.ROIProfile())
	report := engine.Run([]estimation.Param{
		{Key: ParamLandSize, Value: "-4"},
		{Key: ParamRobotCount, Value: []string{"x"}},
	})

	if report.Output.LandSize != 30 || report.Output.RobotCount != 1 {
		t.Errorf("expected defaults 30/1, got %v/%d", report.Output.LandSize, report.Output.RobotCount)
	}
	for name, est := range report.Breakdown {
		if strings.HasPrefix(est.Reason, "Error:") {
			t.Errorf("%s: unexpected error %q", name, est.Reason)
		}
	}
}

func TestNewEngine_NegativeSavings(t *testing.T) {
	t.Parallel()
	p := estimation.ROIProfile()
	p.Constants.RobotOperatingCostPerDay = 1000

	report := NewEngine(p).Run(nil)
	if report.Output.SavingsPerSeason >= 0 {
		t.Fatalf("expected negative savings, got %v", report.Output.SavingsPerSeason)
	}
	if report.Output.PaybackYears.Applicable() {
		t.Errorf("expected payback not applicable, got %v", report.Output.PaybackYears)
	}
}
