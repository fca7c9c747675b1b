package opmatrix

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// JSON Serialization
// ============================================================

func (m Matrix) toJSON() map[string]interface{} {
	cells := make([][]int, Size)
	for i := range cells {
		cells[i] = append([]int(nil), m[i][:]...)
	}
	return map[string]interface{}{"rows": Size, "cols": Size, "cells": cells}
}

func ToJSON(m Matrix) (string, error) {
	b, err := json.Marshal(m.toJSON())
	return string(b), err
}

// FromJSON rebuilds a Matrix from its decoded object form
// {"rows":5,"cols":5,"cells":[[...],...]}. rows and cols are optional but
// must be 5 when present.
func FromJSON(data map[string]interface{}) (Matrix, error) {
	var m Matrix
	if data == nil {
		return m, fmt.Errorf("matrix must be an object")
	}
	for _, dim := range []string{"rows", "cols"} {
		v, ok := data[dim]
		if !ok {
			continue
		}
		f, ok := v.(float64)
		if !ok {
			return m, fmt.Errorf("matrix.%s must be a number", dim)
		}
		if f != Size {
			return m, fmt.Errorf("%w: %s=%v", ErrBadShape, dim, f)
		}
	}
	rawAny, ok := data["cells"]
	if !ok {
		return m, fmt.Errorf("matrix.cells missing")
	}
	rows, ok := rawAny.([]interface{})
	if !ok {
		return m, fmt.Errorf("matrix.cells must be an array")
	}
	if len(rows) != Size {
		return m, fmt.Errorf("%w: got %d rows", ErrBadShape, len(rows))
	}
	for i, r := range rows {
		cols, ok := r.([]interface{})
		if !ok {
			return m, fmt.Errorf("matrix.cells[%d] must be an array", i)
		}
		if len(cols) != Size {
			return m, fmt.Errorf("%w: row %d has %d cells", ErrBadShape, i, len(cols))
		}
		for j, c := range cols {
			f, ok := c.(float64)
			if !ok || f != float64(int(f)) {
				return m, fmt.Errorf("matrix.cells[%d][%d] must be an integer", i, j)
			}
			m[i][j] = int(f)
		}
	}
	return m, nil
}

// ParseJSON decodes a serialized matrix produced by ToJSON.
func ParseJSON(s string) (Matrix, error) {
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(s), &data); err != nil {
		return Matrix{}, fmt.Errorf("invalid matrix JSON: %w", err)
	}
	return FromJSON(data)
}
