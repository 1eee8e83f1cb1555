package quantity

import (
	"github.com/rannd1nt/phaethon/internal/magnitude"
	"github.com/rannd1nt/phaethon/internal/unit"
)

// Cmp compares base values, one sign per element.
func (q *Quantity) Cmp(other *Quantity) ([]int, error) {
	if other == nil {
		return nil, unit.ConversionError{Op: "compare", Reason: "missing operand"}
	}
	if err := unit.CheckSameDimension(q.unit, other.unit, "compare"); err != nil {
		return nil, err
	}
	a, err := q.BaseValue()
	if err != nil {
		return nil, err
	}
	b, err := other.BaseValue()
	if err != nil {
		return nil, err
	}
	signs, err := magnitude.Compare(a, b)
	if err != nil {
		return nil, unit.ConversionError{Op: "compare", Err: err}
	}
	return signs, nil
}

// every reports whether pred holds for all element signs.
func (q *Quantity) every(other *Quantity, pred func(sign int) bool) (bool, error) {
	signs, err := q.Cmp(other)
	if err != nil {
		return false, err
	}
	for _, s := range signs {
		if !pred(s) {
			return false, nil
		}
	}
	return true, nil
}

func (q *Quantity) Equal(other *Quantity) (bool, error) {
	return q.every(other, func(s int) bool { return s == 0 })
}

func (q *Quantity) NotEqual(other *Quantity) (bool, error) {
	return q.every(other, func(s int) bool { return s != 0 })
}

func (q *Quantity) Less(other *Quantity) (bool, error) {
	return q.every(other, func(s int) bool { return s < 0 })
}

func (q *Quantity) LessEqual(other *Quantity) (bool, error) {
	return q.every(other, func(s int) bool { return s <= 0 })
}

func (q *Quantity) Greater(other *Quantity) (bool, error) {
	return q.every(other, func(s int) bool { return s > 0 })
}

func (q *Quantity) GreaterEqual(other *Quantity) (bool, error) {
	return q.every(other, func(s int) bool { return s >= 0 })
}
