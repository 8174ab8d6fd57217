package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		in   string
		want []int
	}{
		{"geral", []int{1, 2, 3, 4, 5, 6, 7}},
		{"1_premio", []int{1}},
		{"5_premio", []int{5}},
		{"9_premio", []int{7}}, // clamps at the deepest stored rank
		{"1_5_premio", []int{1, 2, 3, 4, 5}},
		{"1_ao_5_premio", []int{1, 2, 3, 4, 5}},
		{"3_ao_7_premio", []int{3, 4, 5, 6, 7}},
		{"2_10_premio", []int{2, 3, 4, 5, 6, 7}},
		{"1_e_1_5_premio", []int{1, 2, 3, 4, 5}},
		{"1_e_3_premio", []int{1, 3}},
		{"", []int{1}},
		{"cabeca", []int{1}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePlacement(tt.in), "placement %q", tt.in)
	}
}
