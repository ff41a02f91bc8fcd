package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageParams_Normalization(t *testing.T) {
	tests := []struct {
		name            string
		page, perPage   int
		wantPage        int
		wantPerPage     int
	}{
		{"valid values", 3, 25, 3, 25},
		{"zero page", 0, 10, 1, 10},
		{"negative page", -5, 10, 1, 10},
		{"zero per page", 1, 0, 1, DefaultPerPage},
		{"negative per page", 1, -1, 1, DefaultPerPage},
		{"per page above max", 1, 101, 1, DefaultPerPage},
		{"per page at max", 1, 100, 1, 100},
		{"per page at min", 1, 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPageParams(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
		})
	}
}

func TestPageParams_Offset(t *testing.T) {
	assert.Equal(t, 0, NewPageParams(1, 10).Offset())
	assert.Equal(t, 10, NewPageParams(2, 10).Offset())
	assert.Equal(t, 90, NewPageParams(10, 10).Offset())
	assert.Equal(t, 50, NewPageParams(3, 25).Offset())
}

func TestPageParams_TotalPages(t *testing.T) {
	p := NewPageParams(1, 10)

	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(1))
	assert.Equal(t, 1, p.TotalPages(10))
	assert.Equal(t, 2, p.TotalPages(11))
	assert.Equal(t, 10, p.TotalPages(100))
	assert.Equal(t, 11, p.TotalPages(101))
}
