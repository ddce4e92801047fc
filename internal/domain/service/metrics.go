package service

import "time"

// Metrics records business-level measurements.
type Metrics interface {
	// ObserveSearch records one discovery search and the number of matches before pagination.
	ObserveSearch(duration time.Duration, matches int)

	// RecordDutyMutation counts a duty write by operation (schedule, reschedule, cancel) and outcome.
	RecordDutyMutation(operation, outcome string)

	// RecordRating counts a rating submission, created or updated.
	RecordRating(created bool)

	// RecordEventPublishFailure counts an event that could not be delivered.
	RecordEventPublishFailure(eventType string)
}
