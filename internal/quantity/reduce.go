package quantity

import (
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
)

func (q *Quantity) Sum() (*Quantity, error) { return q.Apply(string(magnitude.OpSum)) }

func (q *Quantity) Mean() (*Quantity, error) { return q.Apply(string(magnitude.OpMean)) }

func (q *Quantity) Median() (*Quantity, error) { return q.Apply(string(magnitude.OpMedian)) }

// Std is the population standard deviation.
func (q *Quantity) Std() (*Quantity, error) { return q.Apply(string(magnitude.OpStd)) }

func (q *Quantity) Max() (*Quantity, error) { return q.Apply(string(magnitude.OpMax)) }

func (q *Quantity) Min() (*Quantity, error) { return q.Apply(string(magnitude.OpMin)) }

// Maximum is the element-wise maximum against other, in q's descriptor.
func (q *Quantity) Maximum(other *Quantity) (*Quantity, error) {
	return q.Apply(string(magnitude.OpMaximum), other)
}

func (q *Quantity) Minimum(other *Quantity) (*Quantity, error) {
	return q.Apply(string(magnitude.OpMinimum), other)
}

// Apply runs an allow-listed magnitude operation. Quantity arguments are
// converted to q's descriptor first; other arguments are parsed as bare
// magnitudes. Operations outside the allow-list fail.
func (q *Quantity) Apply(op string, args ...any) (*Quantity, error) {
	if !magnitude.Allowed(op) {
		return nil, unit.ConversionError{Op: op, Err: magnitude.ErrOperationNotAllowed}
	}
	vals := make([]magnitude.Value, len(args))
	for i, raw := range args {
		if other, ok := raw.(*Quantity); ok {
			conv, err := other.to(q.unit)
			if err != nil {
				return nil, err
			}
			vals[i] = conv.mag
			continue
		}
		v, err := magnitude.Parse(raw)
		if err != nil {
			return nil, unit.ConversionError{Op: op, Err: err}
		}
		vals[i] = v
	}
	v, err := magnitude.Apply(op, q.mag, vals...)
	if err != nil {
		return nil, unit.ConversionError{Op: op, Err: err}
	}
	return q.derive(v, q.unit, q.ctx)
}
