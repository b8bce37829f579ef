package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/panel-comercial/internal/application/report"
)

func TestPaginate(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	t.Run("página completa", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, report.Paginate(rows, 3, 0))
	})

	t.Run("con offset", func(t *testing.T) {
		assert.Equal(t, []int{3, 4}, report.Paginate(rows, 2, 2))
	})

	t.Run("última página corta", func(t *testing.T) {
		assert.Equal(t, []int{5}, report.Paginate(rows, 3, 4))
	})

	t.Run("offset fuera de rango", func(t *testing.T) {
		assert.Empty(t, report.Paginate(rows, 3, 10))
	})

	t.Run("offset negativo se clampa a 0", func(t *testing.T) {
		assert.Equal(t, []int{1, 2}, report.Paginate(rows, 2, -5))
	})

	t.Run("limit cero devuelve todo", func(t *testing.T) {
		assert.Equal(t, rows, report.Paginate(rows, 0, 0))
	})

	t.Run("entrada vacía", func(t *testing.T) {
		assert.Empty(t, report.Paginate([]int{}, 10, 0))
	})
}
