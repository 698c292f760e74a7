package models

import (
	"bytes"
	"strconv"
)

// FlexFloat is a float64 that tolerates sloppy form input. The frontend posts
// numeric fields as numbers, quoted numbers, or empty strings depending on
// which input they came from; anything that does not parse decodes as 0
// (permissive default: a bad row contributes zero instead of failing the form).
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat(parseLenientFloat(data))
	return nil
}

// FlexInt is the integer counterpart of FlexFloat.
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	*i = FlexInt(int(parseLenientFloat(data)))
	return nil
}

func parseLenientFloat(data []byte) float64 {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
