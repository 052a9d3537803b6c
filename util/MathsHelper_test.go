package util

import (
	"math"
	"testing"
)

// Max/Min tests
func TestMax(t *testing.T) {
	if Max(1, 2, 3) != 3 {
		t.Error("Max(1,2,3) should be 3")
	}
	if Max(3, 2, 1) != 3 {
		t.Error("Max(3,2,1) should be 3")
	}
	if Max(-1, -2, -3) != -1 {
		t.Error("Max(-1,-2,-3) should be -1")
	}
	if Max(5) != 5 {
		t.Error("Max(5) should be 5")
	}
	if Max(1.5, 2.5, 0.5) != 2.5 {
		t.Error("Max(1.5,2.5,0.5) should be 2.5")
	}
}

func TestMaxEmpty(t *testing.T) {
	result := Max[int]()
	if result != 0 {
		t.Errorf("Max() should return zero value, got %d", result)
	}
}

func TestMaxNaN(t *testing.T) {
	nan := math.NaN()
	result := Max(nan, 1.0, 2.0)
	if !math.IsNaN(result) {
		t.Error("Max with NaN first should return NaN")
	}
	result = Max(1.0, nan, 2.0)
	if !math.IsNaN(result) {
		t.Error("Max with NaN in middle should return NaN")
	}
}

func TestMin(t *testing.T) {
	if Min(1, 2, 3) != 1 {
		t.Error("Min(1,2,3) should be 1")
	}
	if Min(3, 2, 1) != 1 {
		t.Error("Min(3,2,1) should be 1")
	}
	if Min(-1, -2, -3) != -3 {
		t.Error("Min(-1,-2,-3) should be -3")
	}
	if Min(5) != 5 {
		t.Error("Min(5) should be 5")
	}
}

func TestMinEmpty(t *testing.T) {
	result := Min[int]()
	if result != 0 {
		t.Errorf("Min() should return zero value, got %d", result)
	}
}

func TestMinNaN(t *testing.T) {
	nan := math.NaN()
	result := Min(nan, 1.0, 2.0)
	if !math.IsNaN(result) {
		t.Error("Min with NaN first should return NaN")
	}
}

// Clamp tests
func TestClamp3(t *testing.T) {
	tests := []struct {
		v, a, b  int32
		expected int32
	}{
		{5, 0, 10, 5},   // in range
		{-5, 0, 10, 0},  // below range
		{15, 0, 10, 10}, // above range
		{5, 10, 0, 5},   // reversed bounds, in range
		{-5, 10, 0, 0},  // reversed bounds, below
		{15, 10, 0, 10}, // reversed bounds, above
	}

	for _, tt := range tests {
		result := Clamp3(tt.v, tt.a, tt.b)
		if result != tt.expected {
			t.Errorf("Clamp3(%d, %d, %d) = %d; want %d", tt.v, tt.a, tt.b, result, tt.expected)
		}
	}
}

func TestClamp3Float64(t *testing.T) {
	tests := []struct {
		v, a, b  float64
		expected float64
	}{
		{0.5, 0.0, 1.0, 0.5},
		{-0.5, 0.0, 1.0, 0.0},
		{1.5, 0.0, 1.0, 1.0},
		{0.5, 1.0, 0.0, 0.5}, // reversed bounds
	}

	for _, tt := range tests {
		result := Clamp3(tt.v, tt.a, tt.b)
		if result != tt.expected {
			t.Errorf("Clamp3(%f, %f, %f) = %f; want %f", tt.v, tt.a, tt.b, result, tt.expected)
		}
	}
}
