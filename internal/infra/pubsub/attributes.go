package pubsub

import "pharmaduty/internal/domain/service"

// eventAttributes are the message attributes consumers filter and trace on.
func eventAttributes(event *service.DutyEvent) map[string]string {
	attributes := map[string]string{
		"event_id":    event.EventID,
		"event_type":  string(event.Type),
		"pharmacy_id": event.PharmacyID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
