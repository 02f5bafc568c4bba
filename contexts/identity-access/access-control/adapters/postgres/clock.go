package postgresadapter

import "time"

// SystemClock is the production clock for the access-control module.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
