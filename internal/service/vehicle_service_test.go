package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleServiceList(t *testing.T) {
	s := NewVehicleService()

	all := s.List("", nil)
	require.NotEmpty(t, all)

	available := true
	for _, v := range s.List("", &available) {
		assert.True(t, v.Available)
	}

	sold := false
	for _, v := range s.List("", &sold) {
		assert.False(t, v.Available)
	}

	for _, v := range s.List("toyota", nil) {
		assert.Equal(t, "Toyota", v.Brand)
	}

	assert.Empty(t, s.List("DeLorean", nil))
}

func TestVehicleServiceGetByID(t *testing.T) {
	s := NewVehicleService()

	v, ok := s.GetByID(1)
	require.True(t, ok)
	assert.Equal(t, 1, v.ID)
	assert.NotEmpty(t, v.Seller.Email)

	_, ok = s.GetByID(999)
	assert.False(t, ok)
}
