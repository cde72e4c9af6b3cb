package estimation

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Ratio is a derived value that can be "not applicable", typically because its
// denominator is zero or negative. The zero Ratio is not applicable, and a Ratio
// never carries NaN or an infinity.
type Ratio struct {
	value float64
	valid bool
}

// Some wraps v. NaN and infinities become NotApplicable.
func Some(v float64) Ratio {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotApplicable()
	}
	return Ratio{value: v, valid: true}
}

func NotApplicable() Ratio {
	return Ratio{}
}

// Get returns the value and whether it is applicable.
func (r Ratio) Get() (float64, bool) {
	return r.value, r.valid
}

func (r Ratio) Applicable() bool {
	return r.valid
}

func (r Ratio) String() string {
	if !r.valid {
		return "n/a"
	}
	return strconv.FormatFloat(r.value, 'g', -1, 64)
}

// MarshalJSON encodes a not applicable Ratio as null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.value)
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*r = NotApplicable()
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*r = Some(v)
	return nil
}
