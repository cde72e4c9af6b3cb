package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	robotnik = "robotnik"

	// Estimation metrics
	estimationsTotal = "estimations_total"

	// Waitlist metrics
	waitlistSignupsTotal       = "waitlist_signups_total"
	waitlistNotificationsTotal = "waitlist_notifications_total"

	// Labels
	profileLabel           = "profile"
	signupStateLabel       = "state"
	notificationStateLabel = "state"
)

var estimationsTotalLabels = []string{
	profileLabel,
}

var waitlistSignupsTotalLabels = []string{
	signupStateLabel,
}

var waitlistNotificationsTotalLabels = []string{
	notificationStateLabel,
}

/**
* Metrics definition
**/
var estimationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: robotnik,
		Name:      estimationsTotal,
		Help:      "number of estimations computed, by profile",
	},
	estimationsTotalLabels,
)

var waitlistSignupsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: robotnik,
		Name:      waitlistSignupsTotal,
		Help:      "number of waitlist signups, by outcome",
	},
	waitlistSignupsTotalLabels,
)

var waitlistNotificationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: robotnik,
		Name:      waitlistNotificationsTotal,
		Help:      "number of waitlist notifications dispatched, by outcome",
	},
	waitlistNotificationsTotalLabels,
)

func IncreaseEstimationsTotalMetric(profile string) {
	labels := prometheus.Labels{
		profileLabel: profile,
	}
	estimationsTotalMetric.With(labels).Inc()
}

func IncreaseWaitlistSignupsTotalMetric(state string) {
	labels := prometheus.Labels{
		signupStateLabel: state,
	}
	waitlistSignupsTotalMetric.With(labels).Inc()
}

func IncreaseWaitlistNotificationsTotalMetric(state string) {
	labels := prometheus.Labels{
		notificationStateLabel: state,
	}
	waitlistNotificationsTotalMetric.With(labels).Inc()
}

func init() {
	registerMetrics()
}

func registerMetrics() {
	prometheus.MustRegister(estimationsTotalMetric)
	prometheus.MustRegister(waitlistSignupsTotalMetric)
	prometheus.MustRegister(waitlistNotificationsTotalMetric)
	prometheus.MustRegister(totalUniqueVisitPerWeekMetric)
}
