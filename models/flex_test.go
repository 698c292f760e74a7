package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexDecoding(t *testing.T) {
	var doc struct {
		Rate FlexFloat `json:"rate"`
		Qty  FlexInt   `json:"qty"`
	}

	cases := []struct {
		name     string
		payload  string
		wantRate float64
		wantQty  int
	}{
		{"plain numbers", `{"rate": 450.5, "qty": 3}`, 450.5, 3},
		{"quoted numbers", `{"rate": "450.5", "qty": "3"}`, 450.5, 3},
		{"empty strings", `{"rate": "", "qty": ""}`, 0, 0},
		{"nulls", `{"rate": null, "qty": null}`, 0, 0},
		{"junk", `{"rate": "abc", "qty": "x"}`, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc.Rate, doc.Qty = 0, 0
			require.NoError(t, json.Unmarshal([]byte(tc.payload), &doc))
			assert.Equal(t, tc.wantRate, float64(doc.Rate))
			assert.Equal(t, tc.wantQty, int(doc.Qty))
		})
	}
}
