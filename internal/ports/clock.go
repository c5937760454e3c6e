package ports

import "time"

// Clock supplies the current instant in the service's civil time zone.
type Clock interface {
	Now() time.Time
}
