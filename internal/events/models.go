package events

import "time"

// EstimationEvent records one calculator run. It carries no personal data.
type EstimationEvent struct {
	Profile          string  `json:"profile"`
	LandSize         float64 `json:"land_size"`
	RobotCount       int     `json:"robot_count"`
	SavingsPerSeason float64 `json:"savings_per_season"`
}

// SignupEvent records an accepted waitlist signup. Contact details stay out of the event stream.
type SignupEvent struct {
	SignupID  string    `json:"signup_id"`
	FarmSize  string    `json:"farm_size"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}
