package pageview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySinglePageAlwaysPrev(t *testing.T) {
	for _, offset := range []float64{-30, 0, 4, 50, 99, 250} {
		assert.Equal(t, RolePrev, Classify(100, 100, offset, false, false), "offset %v", offset)
		assert.Equal(t, RolePrev, Classify(108, 100, offset, true, true), "offset %v", offset)
	}
}

func TestClassifyTwoPages(t *testing.T) {
	tests := []struct {
		name        string
		offset      float64
		prevVisible bool
		nextVisible bool
		want        Role
	}{
		{name: "leading edge with prev", offset: 0, prevVisible: true, want: RolePrev},
		{name: "leading edge noise with prev", offset: 9.5, prevVisible: true, want: RolePrev},
		{name: "leading edge without prev", offset: 0, want: RoleMain},
		{name: "trailing edge with next", offset: 100, nextVisible: true, want: RoleNext},
		{name: "trailing edge without next", offset: 100, prevVisible: true, want: RoleMain},
		{name: "trailing noise without next", offset: 97.3, want: RoleMain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(200, 100, tt.offset, tt.prevVisible, tt.nextVisible)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyThreePages(t *testing.T) {
	tests := []struct {
		offset float64
		want   Role
	}{
		{offset: 0, want: RolePrev},
		{offset: 9.9, want: RolePrev},
		{offset: 10, want: RoleMain},
		{offset: 100, want: RoleMain},
		{offset: 109.9, want: RoleMain},
		{offset: 110, want: RoleNext},
		{offset: 200, want: RoleNext},
	}

	for _, tt := range tests {
		// Visibility is ignored once all three slots are laid out.
		assert.Equal(t, tt.want, Classify(300, 100, tt.offset, false, false), "offset %v", tt.offset)
		assert.Equal(t, tt.want, Classify(299.6, 100, tt.offset, true, true), "offset %v", tt.offset)
	}
}

func TestClassifyToleratesWidthNoise(t *testing.T) {
	assert.Equal(t, RoleMain, Classify(201.7, 100.4, 100.4, true, false))
	assert.Equal(t, RoleNext, Classify(208, 100, 100, false, true))
}
