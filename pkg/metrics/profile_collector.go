package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robotnik-ag/robotnik/internal/estimation"
)

type profileCollector struct {
	catalog       *estimation.Catalog
	totalProfiles *prometheus.Desc
	profileInfo   *prometheus.Desc
	robotPrice    *prometheus.Desc
}

// NewProfileCollector exposes the profiles of catalog, read at scrape time.
func NewProfileCollector(catalog *estimation.Catalog) prometheus.Collector {
	fqName := func(name string) string {
		return fmt.Sprintf("%s_profile_%s", robotnik, name)
	}

	return &profileCollector{
		catalog: catalog,
		totalProfiles: prometheus.NewDesc(
			fqName("count"),
			"Total number of estimation profiles.",
			nil,
			prometheus.Labels{},
		),
		profileInfo: prometheus.NewDesc(
			fqName("info"),
			"Estimation profiles, always 1. The default label marks the fallback profile.",
			[]string{"profile", "default"},
			prometheus.Labels{},
		),
		robotPrice: prometheus.NewDesc(
			fqName("robot_price"),
			"Purchase price of one robot in each profile.",
			[]string{"profile"},
			prometheus.Labels{},
		),
	}
}

func (c *profileCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.totalProfiles
	ch <- c.profileInfo
	ch <- c.robotPrice
}

// Collect implements Collector.
func (c *profileCollector) Collect(ch chan<- prometheus.Metric) {
	profiles := c.catalog.Profiles()
	ch <- prometheus.MustNewConstMetric(c.totalProfiles, prometheus.GaugeValue, float64(len(profiles)))

	for _, p := range profiles {
		isDefault := strconv.FormatBool(p.Name == c.catalog.Fallback())
		ch <- prometheus.MustNewConstMetric(c.profileInfo, prometheus.GaugeValue, 1, p.Name, isDefault)
		ch <- prometheus.MustNewConstMetric(c.robotPrice, prometheus.GaugeValue, p.Constants.RobotPrice, p.Name)
	}
}
