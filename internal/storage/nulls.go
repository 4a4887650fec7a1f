package storage

import "database/sql"

// NullableFloat converts a scanned column into an optional macro value
func NullableFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// FloatArg converts an optional macro value into a query argument
func FloatArg(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
