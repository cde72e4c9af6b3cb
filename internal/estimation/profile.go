package estimation

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"sort"

	"sigs.k8s.io/yaml"
)

const (
	// ProfileROI is the return-on-investment calculator of the product page.
	ProfileROI = "roi"
	// ProfileImpact is the fleet-level environmental impact calculator.
	ProfileImpact = "impact"
)

var profileNameRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9_-]*[a-z0-9])?$`)

// Constants are the fixed rates behind every formula. Areas are in decares.
type Constants struct {
	RobotCapacityPerDay       float64 `json:"robotCapacityPerDay"`
	RobotCapacityPerShift     float64 `json:"robotCapacityPerShift"`
	HumanCapacityPerDay       float64 `json:"humanCapacityPerDay"`
	WorkerWagePerDay          float64 `json:"workerWagePerDay"`
	RobotOperatingCostPerDay  float64 `json:"robotOperatingCostPerDay"`
	SessionsPerSeason         float64 `json:"sessionsPerSeason"`
	SeasonDays                float64 `json:"seasonDays"`
	ShiftsPerDay              float64 `json:"shiftsPerDay"`
	ShiftHours                float64 `json:"shiftHours"`
	RobotPrice                float64 `json:"robotPrice"`
	PesticidePerArea          float64 `json:"pesticidePerArea"`
	HumanProductivityPerShift float64 `json:"humanProductivityPerShift"`
}

// Defaults replace inputs that are missing or invalid.
type Defaults struct {
	LandSize   float64 `json:"landSize"`
	RobotCount int     `json:"robotCount"`
}

// Profile is one configuration variant of the calculator.
type Profile struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Constants   Constants `json:"constants"`
	Defaults    Defaults  `json:"defaults"`
}

// StandardConstants are the rates published on the product site.
func StandardConstants() Constants {
	return Constants{
		RobotCapacityPerDay:       2.9,
		RobotCapacityPerShift:     2.9,
		HumanCapacityPerDay:       1.0,
		WorkerWagePerDay:          35,
		RobotOperatingCostPerDay:  5,
		SessionsPerSeason:         4,
		SeasonDays:                120,
		ShiftsPerDay:              2,
		ShiftHours:                8,
		RobotPrice:                10000,
		PesticidePerArea:          0.3,
		HumanProductivityPerShift: 0.15,
	}
}

func ROIProfile() Profile {
	return Profile{
		Name:        ProfileROI,
		Description: "Single farm return on investment",
		Constants:   StandardConstants(),
		Defaults:    Defaults{LandSize: 30, RobotCount: 1},
	}
}

func ImpactProfile() Profile {
	return Profile{
		Name:        ProfileImpact,
		Description: "Fleet environmental impact over a weeding season",
		Constants:   StandardConstants(),
		Defaults:    Defaults{LandSize: 10, RobotCount: 100},
	}
}

// Validate checks that every constant is a finite non-negative number and that the
// defaults are themselves valid inputs.
func (p Profile) Validate() error {
	if !profileNameRegex.MatchString(p.Name) {
		return fmt.Errorf("invalid profile name %q", p.Name)
	}
	var errs []error
	for _, c := range p.Constants.named() {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value < 0 {
			errs = append(errs, fmt.Errorf("%s must be a finite non-negative number, got %v", c.name, c.value))
		}
	}
	if d := p.Defaults.LandSize; math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		errs = append(errs, fmt.Errorf("default landSize must be a finite non-negative number, got %v", d))
	}
	if p.Defaults.RobotCount < 1 {
		errs = append(errs, fmt.Errorf("default robotCount must be positive, got %d", p.Defaults.RobotCount))
	}
	if len(errs) > 0 {
		return fmt.Errorf("profile %s: %w", p.Name, errors.Join(errs...))
	}
	return nil
}

type namedConstant struct {
	name  string
	value float64
}

func (c Constants) named() []namedConstant {
	return []namedConstant{
		{"robotCapacityPerDay", c.RobotCapacityPerDay},
		{"robotCapacityPerShift", c.RobotCapacityPerShift},
		{"humanCapacityPerDay", c.HumanCapacityPerDay},
		{"workerWagePerDay", c.WorkerWagePerDay},
		{"robotOperatingCostPerDay", c.RobotOperatingCostPerDay},
		{"sessionsPerSeason", c.SessionsPerSeason},
		{"seasonDays", c.SeasonDays},
		{"shiftsPerDay", c.ShiftsPerDay},
		{"shiftHours", c.ShiftHours},
		{"robotPrice", c.RobotPrice},
		{"pesticidePerArea", c.PesticidePerArea},
		{"humanProductivityPerShift", c.HumanProductivityPerShift},
	}
}

// LoadProfiles reads profiles from a YAML (or JSON) file of the form
//
//	profiles:
//	  - name: greenhouse
//	    constants:
//	      robotCapacityPerDay: 1.5
//	    defaults:
//	      landSize: 5
//
// Fields a profile leaves out keep the values of ROIProfile.
func LoadProfiles(path string) ([]Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profiles file: %w", err)
	}
	return ParseProfiles(content)
}

func ParseProfiles(content []byte) ([]Profile, error) {
	var doc struct {
		Profiles []json.RawMessage `json:"profiles"`
	}
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parsing profiles: %w", err)
	}

	profiles := make([]Profile, 0, len(doc.Profiles))
	for i, raw := range doc.Profiles {
		p := ROIProfile()
		p.Name = ""
		p.Description = ""
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("parsing profile #%d: %w", i, err)
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Catalog is a read-only set of named profiles with a fallback used when no name is given.
type Catalog struct {
	profiles map[string]Profile
	fallback string
}

// NewCatalog builds a catalog. Later profiles replace earlier ones with the same name.
func NewCatalog(fallback string, profiles ...Profile) (*Catalog, error) {
	c := &Catalog{profiles: make(map[string]Profile, len(profiles)), fallback: fallback}
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		c.profiles[p.Name] = p
	}
	if _, ok := c.profiles[fallback]; !ok {
		return nil, fmt.Errorf("default profile %q is not defined", fallback)
	}
	return c, nil
}

// DefaultCatalog holds the built-in profiles with ProfileROI as fallback.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(ProfileROI, ROIProfile(), ImpactProfile())
	if err != nil {
		panic(err)
	}
	return c
}

// Get returns the named profile, or the fallback when name is empty.
func (c *Catalog) Get(name string) (Profile, bool) {
	if name == "" {
		name = c.fallback
	}
	p, ok := c.profiles[name]
	return p, ok
}

func (c *Catalog) Fallback() string {
	return c.fallback
}

// Names returns the profile names sorted alphabetically.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.profiles))
	for name := range c.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Catalog) Profiles() []Profile {
	names := c.Names()
	out := make([]Profile, 0, len(names))
	for _, name := range names {
		out = append(out, c.profiles[name])
	}
	return out
}
