package builder

import (
	"github.com/joeydtaylor/acoustofield/pkg/internal/sensor"
	"github.com/joeydtaylor/acoustofield/pkg/internal/types"
)

type Sensor = sensor.Sensor

type ComponentMetadata = types.ComponentMetadata

func NewSensor(options ...types.Option[*sensor.Sensor]) *sensor.Sensor {
	return sensor.NewSensor(options...)
}

func SensorWithLogger(loggers ...types.Logger) types.Option[*sensor.Sensor] {
	return sensor.WithLogger(loggers...)
}

func SensorWithComponentMetadata(name string, id string) types.Option[*sensor.Sensor] {
	return sensor.WithComponentMetadata(name, id)
}

func SensorWithOnCaptureFunc(callback ...func(c ComponentMetadata, r PointResult)) types.Option[*sensor.Sensor] {
	return sensor.WithOnCaptureFunc(callback...)
}

func SensorWithOnCaptureErrorFunc(callback ...func(c ComponentMetadata, index int, err error)) types.Option[*sensor.Sensor] {
	return sensor.WithOnCaptureErrorFunc(callback...)
}

func SensorWithOnSuspiciousFunc(callback ...func(c ComponentMetadata, r PointResult)) types.Option[*sensor.Sensor] {
	return sensor.WithOnSuspiciousFunc(callback...)
}

func SensorWithOnBaselineChangeFunc(callback ...func(c ComponentMetadata, index int)) types.Option[*sensor.Sensor] {
	return sensor.WithOnBaselineChangeFunc(callback...)
}

func SensorWithOnRecomputeFunc(callback ...func(c ComponentMetadata, count int)) types.Option[*sensor.Sensor] {
	return sensor.WithOnRecomputeFunc(callback...)
}

func SensorWithOnSkipFunc(callback ...func(c ComponentMetadata, index int, reason string)) types.Option[*sensor.Sensor] {
	return sensor.WithOnSkipFunc(callback...)
}

func SensorWithOnResetFunc(callback ...func(c ComponentMetadata)) types.Option[*sensor.Sensor] {
	return sensor.WithOnResetFunc(callback...)
}

func SensorWithOnFieldFunc(callback ...func(c ComponentMetadata, g StressGrid)) types.Option[*sensor.Sensor] {
	return sensor.WithOnFieldFunc(callback...)
}
