package core

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseVec3 parses "x,y,z", "x y z" or "(x, y, z)" into a Vec3
func ParseVec3(s string) (Vec3, error) {
	values, err := parseComponents(s, 3)
	if err != nil {
		return Vec3{}, err
	}
	return NewVec3(values[0], values[1], values[2]), nil
}

func parseComponents(s string, n int) ([]float64, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d components in %q, got %d", n, s, len(fields))
	}

	values := make([]float64, n)
	for i, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid component %q in %q: %w", field, s, err)
		}
		values[i] = value
	}
	return values, nil
}
