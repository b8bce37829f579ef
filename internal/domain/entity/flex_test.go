package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/panel-comercial/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// FlexID — normalización de identificadores string/número
// ──────────────────────────────────────────────────────────────────────────────

func TestFlexID_NumeroYStringIdentificanLoMismo(t *testing.T) {
	var a, b entity.FlexID
	require.NoError(t, json.Unmarshal([]byte(`5`), &a))
	require.NoError(t, json.Unmarshal([]byte(`"5"`), &b))

	assert.Equal(t, a.String(), b.String(), "5 y \"5\" deben normalizar al mismo id")
	assert.Equal(t, "5", a.String())
}

func TestFlexID_NullYCeroSonAusentes(t *testing.T) {
	cases := map[string]string{
		"null":          `null`,
		"cero numérico": `0`,
		"string vacío":  `""`,
	}
	for name, raw := range cases {
		var id entity.FlexID
		require.NoError(t, json.Unmarshal([]byte(raw), &id), name)
		assert.True(t, id.IsZero(), "%s debe ser ausente", name)
	}
}

func TestFlexID_BasuraNoRevienta(t *testing.T) {
	var id entity.FlexID
	require.NoError(t, json.Unmarshal([]byte(`{"x":1}`), &id))
	assert.True(t, id.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// FlexDecimal — montos tolerantes
// ──────────────────────────────────────────────────────────────────────────────

func TestFlexDecimal_StringYNumero(t *testing.T) {
	var a, b entity.FlexDecimal
	require.NoError(t, json.Unmarshal([]byte(`"50"`), &a))
	require.NoError(t, json.Unmarshal([]byte(`30`), &b))

	assert.True(t, a.Decimal().Equal(decimal.NewFromInt(50)))
	assert.True(t, b.Decimal().Equal(decimal.NewFromInt(30)))
}

func TestFlexDecimal_NoNumericoCuentaComoCero(t *testing.T) {
	for _, raw := range []string{`"abc"`, `null`, `""`, `[1]`} {
		var d entity.FlexDecimal
		require.NoError(t, json.Unmarshal([]byte(raw), &d), raw)
		assert.True(t, d.Decimal().IsZero(), "%s debe contar como 0", raw)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// FlexInt — cantidades
// ──────────────────────────────────────────────────────────────────────────────

func TestFlexInt_Coerciones(t *testing.T) {
	cases := []struct {
		raw  string
		want int64
	}{
		{`2`, 2},
		{`"2"`, 2},
		{`2.7`, 2}, // se trunca, no se redondea
		{`"x"`, 0},
		{`null`, 0},
	}
	for _, tc := range cases {
		var n entity.FlexInt
		require.NoError(t, json.Unmarshal([]byte(tc.raw), &n), tc.raw)
		assert.Equal(t, tc.want, n.Int(), "raw=%s", tc.raw)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Customer.DisplayName
// ──────────────────────────────────────────────────────────────────────────────

func TestCustomer_DisplayName(t *testing.T) {
	c := entity.Customer{ID: "1", FirstName: "A", LastName: "B"}
	assert.Equal(t, "A B", c.DisplayName())

	soloNombre := entity.Customer{ID: "2", FirstName: "Ana"}
	assert.Equal(t, "Ana", soloNombre.DisplayName())

	vacio := entity.Customer{ID: "7"}
	assert.Equal(t, "Customer #7", vacio.DisplayName(),
		"sin nombre debe caer al fallback con id")
}
