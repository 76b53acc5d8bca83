package sqlite

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Row fila de un resultado. Conserva el orden de columnas de la consulta.
type Row struct {
	columns []string
	values  []any
}

// NewRow construye una fila (útil para dobles de prueba).
func NewRow(columns []string, values []any) Row {
	return Row{columns: columns, values: values}
}

// Columns nombres de columna en orden.
func (r Row) Columns() []string { return r.columns }

// Values valores en el orden de Columns.
func (r Row) Values() []any { return r.values }

// Len cantidad de columnas.
func (r Row) Len() int { return len(r.values) }

// At valor por posición.
func (r Row) At(i int) any {
	if i < 0 || i >= len(r.values) {
		return nil
	}
	return r.values[i]
}

// Has indica si la fila tiene la columna.
func (r Row) Has(col string) bool { return r.index(col) >= 0 }

// Value valor por nombre de columna; nil si no existe.
func (r Row) Value(col string) any {
	return r.At(r.index(col))
}

func (r Row) index(col string) int {
	for i, c := range r.columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Int64 valor entero; 0 si es NULL o no convertible.
func (r Row) Int64(col string) int64 {
	n, _ := toInt64(r.Value(col))
	return n
}

// NullInt64 valor entero opcional; nil si es NULL.
func (r Row) NullInt64(col string) *int64 {
	n, ok := toInt64(r.Value(col))
	if !ok {
		return nil
	}
	return &n
}

// Float64 valor real; 0 si es NULL.
func (r Row) Float64(col string) float64 {
	switch v := r.Value(col).(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	case []byte:
		f, _ := strconv.ParseFloat(string(v), 64)
		return f
	default:
		return 0
	}
}

// Decimal valor numérico como decimal; cero si es NULL.
func (r Row) Decimal(col string) decimal.Decimal {
	switch v := r.Value(col).(type) {
	case float64:
		return decimal.NewFromFloat(v)
	case int64:
		return decimal.NewFromInt(v)
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// NullDecimal valor numérico como decimal; inválido si es NULL.
func (r Row) NullDecimal(col string) decimal.NullDecimal {
	if r.Value(col) == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(r.Decimal(col))
}

// String valor como texto; "" si es NULL.
func (r Row) String(col string) string {
	return FormatValue(r.Value(col))
}

// Map copia la fila en un mapa columna → valor.
func (r Row) Map() map[string]any {
	m := make(map[string]any, len(r.columns))
	for i, c := range r.columns {
		m[c] = r.values[i]
	}
	return m
}

// FormatValue representación textual de un valor devuelto por el driver.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.DateTime)
	default:
		return fmt.Sprint(x)
	}
}

func toInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case int:
		return int64(x), true
	case float64:
		return int64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		return n, err == nil
	case []byte:
		n, err := strconv.ParseInt(string(x), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
