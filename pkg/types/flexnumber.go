package types

import (
	"strconv"
	"strings"
)

// FlexNumber decodes a JSON value that is expected to be numeric but may
// arrive as a number, a quoted numeric string, or garbage. Anything that
// does not parse as a number becomes 0 instead of failing the decode.
// Write inputs on the catalog are coercive, not strict.
type FlexNumber float64

// UnmarshalJSON implements json.Unmarshaler.
func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*n = 0
		return nil
	}
	*n = FlexNumber(v)
	return nil
}

// Float64 returns the decoded value.
func (n FlexNumber) Float64() float64 {
	return float64(n)
}
