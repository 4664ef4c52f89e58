package service

import (
	"context"
	"testing"

	"carrental/pkg/logger"
	"carrental/pkg/models"
	"carrental/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarService_Price(t *testing.T) {
	svc := NewCarService(newMockStorage(), logger.Nop())
	camry := models.NewCar(1, "Toyota", "Camry", 45)

	tests := []struct {
		days    int
		want    float64
		wantErr bool
	}{
		{days: 3, want: 135},
		{days: 1, want: 45},
		{days: 0, wantErr: true},
		{days: -2, wantErr: true},
	}
	for _, tt := range tests {
		got, err := svc.Price(camry, tt.days)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidRentalPeriod)
			continue
		}
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9)
	}
}

func TestCarService_MarkRented(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryServices(t)

	require.NoError(t, svc.Car().MarkRented(ctx, 2))
	available, err := svc.Car().ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "Toyota Camry", available[0].Name())
	assert.Equal(t, "Ford Focus", available[1].Name())

	assert.ErrorIs(t, svc.Car().MarkRented(ctx, 2), storage.ErrCarNotAvailable)
	assert.ErrorIs(t, svc.Car().MarkRented(ctx, 99), storage.ErrCarNotFound)
}

func TestCarService_ListAvailable_PassesThrough(t *testing.T) {
	ctx := context.Background()
	stg := newMockStorage()
	cars := []*models.Car{models.NewCar(5, "Kia", "Rio", 30)}
	stg.cars.On("GetAvailable", ctx).Return(cars, nil)

	got, err := NewCarService(stg, logger.Nop()).ListAvailable(ctx)
	require.NoError(t, err)
	assert.Equal(t, cars, got)
	stg.cars.AssertExpectations(t)
}
