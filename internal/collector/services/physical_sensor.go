package services

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v4/sensors"
)

type TempStat struct {
	SensorKey   string
	Temperature float64
}

type PhysicalResult struct {
	Temperatures []TempStat
}

type PhysicalSensor struct{}

func NewPhysicalSensor() *PhysicalSensor {
	return &PhysicalSensor{}
}

func (s *PhysicalSensor) Name() string {
	return "Physical"
}

func (s *PhysicalSensor) Connect(ctx context.Context) error {
	return nil
}

func (s *PhysicalSensor) Disconnect(ctx context.Context) error {
	return nil
}

// Collect returns whatever readings were obtained. gopsutil reports
// unreadable hwmon entries as warnings next to valid data, so an error is
// only returned when nothing at all could be read.
func (s *PhysicalSensor) Collect(ctx context.Context) (any, error) {
	data, err := sensors.TemperaturesWithContext(ctx)
	if err != nil && len(data) == 0 {
		return nil, fmt.Errorf("failed to get temperatures: %w", err)
	}

	temps := make([]TempStat, 0, len(data))
	for _, t := range data {
		temps = append(temps, TempStat{
			SensorKey:   t.SensorKey,
			Temperature: t.Temperature,
		})
	}

	return PhysicalResult{Temperatures: temps}, nil
}
