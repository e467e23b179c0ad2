package config

import "time"

// CronConfig holds the scheduled news search settings shared by cmd/worker
// and the GET path of the search gateway.
type CronConfig struct {
	// Secret is the shared token a scheduler must present as a bearer
	// token on GET /api/search-industry-news. Loaded from CRON_SECRET.
	// When empty, the scheduled HTTP path is disabled.
	Secret string

	// Schedule is the cron expression for the in-process worker.
	// Loaded from CRON_SCHEDULE. Default: "0 * * * *" (hourly).
	Schedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	// Loaded from CRON_TIMEZONE. Default: "UTC".
	Timezone string

	// SearchTimeout bounds a single scheduled search run. Default: 2m.
	SearchTimeout time.Duration

	// HealthPort is the port for the worker's health/metrics server.
	// Default: 9091.
	HealthPort int
}

// LoadCronConfig loads the scheduler configuration from the environment.
func LoadCronConfig() CronConfig {
	return CronConfig{
		Secret:        envStr("CRON_SECRET", ""),
		Schedule:      envStr("CRON_SCHEDULE", "0 * * * *"),
		Timezone:      envStr("CRON_TIMEZONE", "UTC"),
		SearchTimeout: envDuration("CRON_SEARCH_TIMEOUT", 2*time.Minute),
		HealthPort:    envInt("CRON_HEALTH_PORT", 9091),
	}
}
