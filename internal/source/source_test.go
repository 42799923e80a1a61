package source

import (
	"testing"

	"github.com/stretchr/testify/require"

	"routeopt/internal/model"
)

func TestExpand(t *testing.T) {
	window := &model.TimeWindow{}
	locs := Expand([]Delivery{
		{OrderID: "o1", PickupLat: 40.75, PickupLng: -73.98, DropoffLat: 40.76, DropoffLng: -73.99, OrderValue: 250, Window: window},
		{OrderID: "o2", PickupLat: 40.70, PickupLng: -74.00, DropoffLat: 40.71, DropoffLng: -74.01, OrderValue: 5},
	})
	require.Len(t, locs, 4)

	require.Equal(t, "o1-pickup", locs[0].ID)
	require.Equal(t, model.KindPickup, locs[0].Kind)
	require.Equal(t, "o1-delivery", locs[1].ID)
	require.Equal(t, model.KindDelivery, locs[1].Kind)
	require.Equal(t, "o1", locs[1].OrderID)
	require.Same(t, window, locs[0].TimeWindow)

	// priority scales with order value and bottoms out at 1
	require.Equal(t, 25.0, locs[0].Priority)
	require.Equal(t, 1.0, locs[2].Priority)
}

func TestExpandEmpty(t *testing.T) {
	require.Empty(t, Expand(nil))
}
