package service

import "time"

// Clock supplies the current instant to callers that default "now".
type Clock interface {
	Now() time.Time
}
