package services

import "context"

// Sensor is a single source of host readings. Collect returns one of the
// *Result types of this package.
type Sensor interface {
	Name() string
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Collect(ctx context.Context) (any, error)
}
