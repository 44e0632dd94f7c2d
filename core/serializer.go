package core

import "database/sql/driver"

// Map is the plain key-value representation of an entity, ready for transport or storage.
type Map map[string]interface{}

// Serializable is implemented by entities that know how to flatten themselves into a Map.
type Serializable interface {
	ToJSON() Map
}

// Nullable returns the underlying value of v, or nil when v is not set.
// Works with any null.* type (null.Int gives int64, null.String gives string).
func Nullable(v driver.Valuer) interface{} {
	val, err := v.Value()
	if err != nil {
		return nil
	}
	return val
}
