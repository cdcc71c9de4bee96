package configuration

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
	"github.com/uw2go/uw2go/internal/hal"
)

// Optional is a generic container for optional configuration values.
type Optional[T any] struct {
	// Value holds the actual as unmarshalled.
	Value T
	// Present indicates if the value was present in the configuration.
	Present bool
}

func (o *Optional[T]) Get() T {
	return o.Value
}

// DefaultTrueBool is a boolean type that defaults to true if not present.
type DefaultTrueBool struct {
	Optional[bool]
}

// Get returns the boolean value, defaulting to true if not present.
func (b *DefaultTrueBool) Get() bool {
	if !b.Present {
		return true
	}
	return b.Value
}

// DefaultTrueBoolHookFunc returns a mapstructure decode hook function for DefaultTrueBool.
func DefaultTrueBoolHookFunc() mapstructure.DecodeHookFuncType {
	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{}) (interface{}, error) {

		// Only target our specific named type
		if t != reflect.TypeOf(DefaultTrueBool{}) {
			return data, nil
		}

		var val bool
		switch v := data.(type) {
		case bool:
			val = v
		case string:
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return data, nil
			}
			val = parsed
		default:
			return data, nil
		}

		return DefaultTrueBool{
			Optional: Optional[bool]{
				Value:   val,
				Present: true,
			},
		}, nil
	}
}

// PerformanceProfileHookFunc returns a mapstructure decode hook that decodes
// a profile name (e.g. "enthusiast") into a hal.PerformanceProfile.
func PerformanceProfileHookFunc() mapstructure.DecodeHookFuncType {
	profileType := reflect.TypeOf(hal.PerformanceProfile(0))

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != profileType {
			return data, nil
		}

		name, ok := data.(string)
		if !ok {
			return data, nil
		}
		return hal.ParseProfile(name)
	}
}

// CurveStepsHookFunc returns a mapstructure decode hook that converts the
// temperature keys of a curve (interface{} or string keys from YAML) to int.
func CurveStepsHookFunc() mapstructure.DecodeHookFuncType {
	stepsType := reflect.TypeOf(CurveSteps{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != stepsType {
			return data, nil
		}

		steps := CurveSteps{}
		switch v := data.(type) {
		case map[interface{}]interface{}:
			for k, val := range v {
				if err := putStep(steps, k, val); err != nil {
					return nil, err
				}
			}
		case map[string]interface{}:
			for k, val := range v {
				if err := putStep(steps, k, val); err != nil {
					return nil, err
				}
			}
		case map[int]int:
			for k, val := range v {
				steps[k] = val
			}
		default:
			return nil, fmt.Errorf("unsupported curve steps type %T", data)
		}
		return steps, nil
	}
}

func putStep(steps CurveSteps, key interface{}, value interface{}) error {
	temp, err := anyToInt(key)
	if err != nil {
		return fmt.Errorf("invalid temperature %v: %w", key, err)
	}
	speed, err := anyToInt(value)
	if err != nil {
		return fmt.Errorf("invalid speed %v: %w", value, err)
	}
	steps[temp] = speed
	return nil
}

// anyToInt converts numeric and string values to int.
func anyToInt(v interface{}) (int, error) {
	switch val := v.(type) {
	case int:
		return val, nil
	case int64:
		return int(val), nil
	case uint64:
		return int(val), nil
	case float64:
		return int(val), nil
	case string:
		n, err := strconv.Atoi(val)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as int: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", v)
	}
}
