package structs

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Whale is a tracked wallet whose holdings feed the alerting jobs.
type Whale struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty"`
	Name                   string             `bson:"name"`
	WalletAddress          string             `bson:"wallet_address"`
	PercentageChange24h    float64            `bson:"percentage_change_24h"`
	PriceChange7Days       float64            `bson:"price_change_7d"`
	PercentageChange7Days  float64            `bson:"percentage_change_7d"`
	PriceChange30Days      float64            `bson:"price_change_30d"`
	PercentageChange30Days float64            `bson:"percentage_change_30d"`
	PriceChange1Year       float64            `bson:"price_change_1y"`
	PercentageChange1Year  float64            `bson:"percentage_change_1y"`
	CreatedAt              time.Time          `bson:"created_at"`
	UpdatedAt              time.Time          `bson:"updated_at"`
}

// WhaleToken records one token recently bought by one whale wallet. The
// alert job rebuilds the collection on every pass.
type WhaleToken struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	WhaleID      primitive.ObjectID `bson:"whale_id"`
	TokenAddress string             `bson:"token_address"`
	CreatedAt    time.Time          `bson:"created_at"`
}
