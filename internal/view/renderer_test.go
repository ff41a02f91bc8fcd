package view

import (
	"strings"
	"testing"

	"records-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRendererParsesEmbeddedTemplates(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)
	require.NotNil(t, renderer)
}

func TestRendererRendersAdminPage(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	data := struct {
		Records    []models.UnprocessedRecord
		Page       int
		PerPage    int
		TotalPages int
		TotalCount int64
	}{
		Page:       1,
		PerPage:    10,
		TotalPages: 1,
	}

	var sb strings.Builder
	require.NoError(t, renderer.Render(&sb, "admin.html", data, nil))
	assert.Contains(t, sb.String(), "Page 1 of 1")
}

func TestFormatMoneyTwoDecimalPlaces(t *testing.T) {
	assert.Equal(t, "-80.00", formatMoney(decimal.NewFromInt(-80)))
	assert.Equal(t, "12.35", formatMoney(decimal.RequireFromString("12.345")))
	assert.Equal(t, "0.00", formatMoney(decimal.Zero))
}
