package model

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T) *Product {
	t.Helper()
	p, err := NewProduct(7, "Bosch", "Toaster", 4.25, 2499.99)
	require.NoError(t, err)
	return p
}

func TestNewProductRoundTrip(t *testing.T) {
	p := newTestProduct(t)

	assert.Equal(t, ProductID(7), p.ID())
	assert.Equal(t, "Bosch", p.Brand())
	assert.Equal(t, "Toaster", p.Name())
	assert.Equal(t, 4.25, p.Rating())
	assert.Equal(t, 2499.99, p.Price())
}

func TestNewProductAcceptsRatingBounds(t *testing.T) {
	_, err := NewProduct(1, "LG", "Toaster", 0, 10)
	assert.NoError(t, err)
	_, err = NewProduct(1, "LG", "Toaster", 5, 10)
	assert.NoError(t, err)
}

func TestNewProductRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		brand  string
		pname  string
		rating float64
		price  float64
	}{
		{"zero price", "LG", "Toaster", 3, 0},
		{"negative price", "LG", "Toaster", 3, -5},
		{"NaN price", "LG", "Toaster", 3, math.NaN()},
		{"infinite price", "LG", "Toaster", 3, math.Inf(1)},
		{"rating below zero", "LG", "Toaster", -0.01, 10},
		{"rating above five", "LG", "Toaster", 5.01, 10},
		{"NaN rating", "LG", "Toaster", math.NaN(), 10},
		{"empty brand", "", "Toaster", 3, 10},
		{"empty name", "LG", "", 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduct(1, tt.brand, tt.pname, tt.rating, tt.price)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.Nil(t, p)
		})
	}
}

func TestSetPrice(t *testing.T) {
	p := newTestProduct(t)

	require.NoError(t, p.SetPrice(1500))
	assert.Equal(t, 1500.0, p.Price())

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.ErrorIs(t, p.SetPrice(bad), ErrInvalidValue)
		assert.Equal(t, 1500.0, p.Price(), "price changed after rejected value %v", bad)
	}
}

func TestSetRating(t *testing.T) {
	p := newTestProduct(t)

	require.NoError(t, p.SetRating(0))
	assert.Equal(t, 0.0, p.Rating())
	require.NoError(t, p.SetRating(5))
	assert.Equal(t, 5.0, p.Rating())

	for _, bad := range []float64{-1, 5.5, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, p.SetRating(bad), ErrInvalidValue)
		assert.Equal(t, 5.0, p.Rating(), "rating changed after rejected value %v", bad)
	}
}

func TestProductString(t *testing.T) {
	p := newTestProduct(t)
	assert.Equal(t, "7_Toaster", p.String())
}

func TestProductUnmarshalValidates(t *testing.T) {
	var p Product
	err := json.Unmarshal([]byte(`{"id":1,"brand":"LG","name":"Toaster","price":10,"rating":9}`), &p)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestProductJSONRoundTrip(t *testing.T) {
	original := newTestProduct(t)
	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Product
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.ID(), decoded.ID())
	assert.Equal(t, original.Brand(), decoded.Brand())
	assert.Equal(t, original.Price(), decoded.Price())
	assert.Equal(t, original.Rating(), decoded.Rating())
}
