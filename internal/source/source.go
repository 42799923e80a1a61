package source

import (
	"context"
	"fmt"

	"routeopt/internal/model"
)

// Delivery is one active order as reported by the order system: a pickup
// point and a dropoff point with the order's value.
type Delivery struct {
	OrderID        string            `json:"orderId"`
	PickupAddress  string            `json:"pickupAddress,omitempty"`
	PickupLat      float64           `json:"pickupLat"`
	PickupLng      float64           `json:"pickupLng"`
	DropoffAddress string            `json:"dropoffAddress,omitempty"`
	DropoffLat     float64           `json:"dropoffLat"`
	DropoffLng     float64           `json:"dropoffLng"`
	OrderValue     float64           `json:"orderValue,omitempty"`
	ServiceMinutes float64           `json:"serviceMinutes,omitempty"`
	Window         *model.TimeWindow `json:"window,omitempty"`
}

// LocationSource fetches a driver's in-progress deliveries from the order
// system. It is the only external read the optimization engine performs.
type LocationSource interface {
	ActiveDeliveries(ctx context.Context, driverID string) ([]Delivery, error)
}

// Priority is derived from order value so pricier orders weigh more in the
// earnings term; it bottoms out at the default priority of 1.
func priorityFor(value float64) float64 {
	p := value / 10
	if p < 1 {
		return 1
	}
	return p
}

// Expand converts each delivery into a pickup Location and a delivery
// Location, in input order.
func Expand(deliveries []Delivery) []model.Location {
	out := make([]model.Location, 0, 2*len(deliveries))
	for _, d := range deliveries {
		prio := priorityFor(d.OrderValue)
		out = append(out, model.Location{
			ID:             fmt.Sprintf("%s-pickup", d.OrderID),
			Lat:            d.PickupLat,
			Lng:            d.PickupLng,
			Address:        d.PickupAddress,
			Kind:           model.KindPickup,
			OrderID:        d.OrderID,
			Priority:       prio,
			TimeWindow:     d.Window,
			ServiceMinutes: d.ServiceMinutes,
		}, model.Location{
			ID:             fmt.Sprintf("%s-delivery", d.OrderID),
			Lat:            d.DropoffLat,
			Lng:            d.DropoffLng,
			Address:        d.DropoffAddress,
			Kind:           model.KindDelivery,
			OrderID:        d.OrderID,
			Priority:       prio,
			TimeWindow:     d.Window,
			ServiceMinutes: d.ServiceMinutes,
		})
	}
	return out
}
