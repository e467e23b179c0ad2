package metrics

import (
	"strconv"
	"time"
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	HTTPRequestsTotal.WithLabelValues(method, path, code).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
}

// RecordPostGenerated records the outcome of one generation attempt.
func RecordPostGenerated(success bool, duration time.Duration) {
	PostsGeneratedTotal.WithLabelValues(outcome(success)).Inc()
	PostGenerationDuration.Observe(duration.Seconds())
}

// RecordNewsSearch records the outcome of one news search run.
func RecordNewsSearch(success bool) {
	NewsSearchesTotal.WithLabelValues(outcome(success)).Inc()
}

// RecordNewsItemSaved records one successful news item write.
func RecordNewsItemSaved() {
	NewsItemsSavedTotal.Inc()
}

// RecordNewsItemSaveFailure records one failed news item write.
func RecordNewsItemSaveFailure() {
	NewsItemSaveFailuresTotal.Inc()
}

// RecordScheduledSearchRun records the outcome of one worker cron run.
func RecordScheduledSearchRun(success bool) {
	ScheduledSearchRunsTotal.WithLabelValues(outcome(success)).Inc()
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
