package camera

import (
	"math"
	"testing"
)

func floatPtr(v float64) *float64 {
	return &v
}

func stringPtr(s string) *string {
	return &s
}

func TestConvertNormalized_Endpoints(t *testing.T) {
	// 0は範囲の最小値、1は最大値に対応する
	min := ConvertNormalized(floatPtr(0), 1, 5)
	if min == nil || *min != 1 {
		t.Errorf("Expected 1, got %v", min)
	}

	max := ConvertNormalized(floatPtr(1), 1, 5)
	if max == nil || *max != 5 {
		t.Errorf("Expected 5, got %v", max)
	}
}

func TestConvertNormalized_Midpoint(t *testing.T) {
	got := ConvertNormalized(floatPtr(0.5), 1, 5)
	if got == nil || math.Abs(*got-3) > 1e-9 {
		t.Errorf("Expected 3, got %v", got)
	}
}

func TestConvertNormalized_Nil(t *testing.T) {
	// nilは「未指定」であり、0（最小値の指定）とは区別される
	if got := ConvertNormalized(nil, 1, 5); got != nil {
		t.Errorf("Expected nil, got %v", *got)
	}
}

func TestConvertNormalized_OutOfDomain(t *testing.T) {
	// 範囲外の入力は拒否せずクランプする
	testCases := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"下限超過", -1.0, 1},
		{"上限超過", 2.5, 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ConvertNormalized(floatPtr(tc.value), 1, 5)
			if got == nil || *got != tc.expected {
				t.Errorf("Expected %g, got %v", tc.expected, got)
			}
		})
	}
}

func TestConvertNormalized_CollapsedRange(t *testing.T) {
	// min == max に縮退した範囲でもその1点へ収束する
	got := ConvertNormalized(floatPtr(0.5), 4, 4)
	if got == nil || *got != 4 {
		t.Errorf("Expected 4, got %v", got)
	}
}

func TestClampToRange(t *testing.T) {
	testCases := []struct {
		value, min, max, expected float64
	}{
		{3, 1, 5, 3},
		{0, 1, 5, 1},
		{7, 1, 5, 5},
		{4, 4, 4, 4},
	}

	for _, tc := range testCases {
		if got := ClampToRange(tc.value, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampToRange(%g, %g, %g) = %g, expected %g", tc.value, tc.min, tc.max, got, tc.expected)
		}
	}
}
