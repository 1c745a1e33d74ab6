package models

import "time"

// PriceTick is a single close price observation delivered by a feed listener.
// Ticks are ephemeral, they are consumed by one scheduler pass and dropped.
type PriceTick struct {
	Symbol     string
	Price      float64
	ObservedAt time.Time
}
