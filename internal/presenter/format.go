package presenter

import (
	"math"
	"strconv"

	"github.com/robotnik-ag/robotnik/internal/estimation"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Placeholder is shown in place of a value that is not applicable.
const Placeholder = "–"

// Display is the text rendering of an estimation.Output.
type Display struct {
	RobotDays             string `json:"robotDays"`
	ManualDays            string `json:"manualDays"`
	RobotShifts           string `json:"robotShifts"`
	RobotHours            string `json:"robotHours"`
	SpeedMultiplier       string `json:"speedMultiplier"`
	RobotCostPerSeason    string `json:"robotCostPerSeason"`
	ManualCostPerSeason   string `json:"manualCostPerSeason"`
	SavingsPerSeason      string `json:"savingsPerSeason"`
	PaybackYears          string `json:"paybackYears"`
	TotalAreaCovered      string `json:"totalAreaCovered"`
	PesticidesSaved       string `json:"pesticidesSaved"`
	HumansLiberated       string `json:"humansLiberated"`
	PesticideSavedByUsage string `json:"pesticideSavedByUsage"`
}

// Format renders out for display. Currency and counts are rounded to whole units here and
// nowhere else.
func Format(out estimation.Output) Display {
	p := message.NewPrinter(language.English)
	return Display{
		RobotDays:             days(p, out.RobotDaysNeeded),
		ManualDays:            days(p, out.ManualDaysNeeded),
		RobotShifts:           p.Sprintf("%d", out.RobotShiftsNeeded),
		RobotHours:            p.Sprintf("%d", out.RobotHoursNeeded),
		SpeedMultiplier:       ratio(out.SpeedMultiplier, "x"),
		RobotCostPerSeason:    euro(p, out.RobotCostPerSeason),
		ManualCostPerSeason:   euro(p, out.ManualCostPerSeason),
		SavingsPerSeason:      euro(p, out.SavingsPerSeason),
		PaybackYears:          ratio(out.PaybackYears, ""),
		TotalAreaCovered:      count(p, out.TotalAreaCoveredPerSeason),
		PesticidesSaved:       count(p, out.PesticidesSavedKg),
		HumansLiberated:       p.Sprintf("%d", out.HumansLiberated),
		PesticideSavedByUsage: ratio(out.PesticideSavedByUsageKg, " kg/year"),
	}
}

func days(p *message.Printer, n int) string {
	if n == 1 {
		return "1 day"
	}
	return p.Sprintf("%d days", n)
}

// roundHalfUp rounds halves towards positive infinity.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// int64Limit is 2^63; rounded values at or beyond it do not fit an int64.
const int64Limit = 1 << 63

func euro(p *message.Printer, v float64) string {
	r := roundHalfUp(v)
	if r < 0 {
		return "-€" + whole(p, -r)
	}
	return "€" + whole(p, r)
}

func count(p *message.Printer, v float64) string {
	return whole(p, roundHalfUp(v))
}

// whole prints an already rounded value with digit grouping.
func whole(p *message.Printer, r float64) string {
	if math.Abs(r) >= int64Limit {
		return p.Sprintf("%.0f", r)
	}
	return p.Sprintf("%d", int64(r))
}

// ratio prints one decimal followed by suffix, or the placeholder.
func ratio(r estimation.Ratio, suffix string) string {
	v, ok := r.Get()
	if !ok {
		return Placeholder
	}
	return strconv.FormatFloat(v, 'f', 1, 64) + suffix
}
