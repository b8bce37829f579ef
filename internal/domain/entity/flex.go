package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Tipos escalares tolerantes para el JSON del backend, que mezcla números y
// strings en los mismos campos ("50" vs 50, ids numéricos vs ids string).
// La normalización es explícita: nunca dependemos de comparaciones laxas.

// FlexID normaliza un identificador a string. null, ausente y el número 0
// se consideran ausentes (string vacío).
type FlexID string

// UnmarshalJSON acepta string, número o null.
func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		*f = ""
		return nil
	}
	s := n.String()
	// El 0 numérico marca "sin referencia" en el backend
	if v, err := n.Float64(); err == nil && v == 0 {
		*f = ""
		return nil
	}
	// 5.0 y 5 identifican el mismo recurso
	s = strings.TrimSuffix(s, ".0")
	*f = FlexID(s)
	return nil
}

// String devuelve el id normalizado.
func (f FlexID) String() string { return string(f) }

// IsZero indica si el id está ausente.
func (f FlexID) IsZero() bool { return f == "" }

// MarshalJSON serializa siempre como string.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// FlexDecimal normaliza un monto a decimal. Valores ausentes, null o no
// numéricos cuentan como 0 (degradación silenciosa, no error).
type FlexDecimal struct {
	d decimal.Decimal
}

// NewFlexDecimal construye un FlexDecimal a partir de un decimal (tests y fixtures).
func NewFlexDecimal(d decimal.Decimal) FlexDecimal { return FlexDecimal{d: d} }

// UnmarshalJSON acepta número, string numérico o null.
func (f *FlexDecimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		f.d = decimal.Zero
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			f.d = decimal.Zero
			return nil
		}
		s = strings.TrimSpace(s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		f.d = decimal.Zero
		return nil
	}
	f.d = d
	return nil
}

// Decimal devuelve el valor normalizado.
func (f FlexDecimal) Decimal() decimal.Decimal { return f.d }

// MarshalJSON delega en shopspring/decimal.
func (f FlexDecimal) MarshalJSON() ([]byte, error) {
	return f.d.MarshalJSON()
}

// FlexInt normaliza una cantidad a entero. Strings numéricos se convierten,
// decimales se truncan, y cualquier otra cosa cuenta como 0.
type FlexInt int64

// UnmarshalJSON acepta número, string numérico o null.
func (f *FlexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(s)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt(int64(v))
		return nil
	}
	*f = 0
	return nil
}

// Int devuelve la cantidad normalizada.
func (f FlexInt) Int() int64 { return int64(f) }

// MarshalJSON serializa como número.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(f))
}
