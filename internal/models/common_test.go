// internal/models/common_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecificationsPreserveOrder(t *testing.T) {
	specs := Specifications{
		{Key: "Battery Life", Value: "30 hours"},
		{Key: "Bluetooth", Value: "5.0"},
		{Key: "Weight", Value: "250g"},
		{Key: "ANC", Value: "Yes"},
	}

	data, err := json.Marshal(specs)
	require.NoError(t, err)
	assert.Equal(t, `{"Battery Life":"30 hours","Bluetooth":"5.0","Weight":"250g","ANC":"Yes"}`, string(data))

	var decoded Specifications
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, specs, decoded)
}

func TestSpecificationsGet(t *testing.T) {
	specs := Specifications{{Key: "Material", Value: "Aluminum"}}

	value, ok := specs.Get("Material")
	assert.True(t, ok)
	assert.Equal(t, "Aluminum", value)

	_, ok = specs.Get("Color")
	assert.False(t, ok)
}

func TestSpecificationsRejectNonObject(t *testing.T) {
	var specs Specifications
	assert.Error(t, json.Unmarshal([]byte(`["not","an","object"]`), &specs))
}

func TestOrderTotalsRoundOnSerialization(t *testing.T) {
	totals := OrderTotals{
		Subtotal: 29.990000000000002,
		Tax:      2.3992,
		Shipping: 9.99,
		Total:    42.379200000000004,
	}

	data, err := json.Marshal(totals)
	require.NoError(t, err)
	assert.JSONEq(t, `{"subtotal":29.99,"tax":2.4,"shipping":9.99,"total":42.38}`, string(data))
}
