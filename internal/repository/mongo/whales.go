package mongo

import (
	"context"
	"time"

	"recifi/internal/repository/mongo/structs"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type WhaleRepository struct {
	conn   *mongo.Client
	whales *mongo.Collection
	tokens *mongo.Collection
}

func NewWhaleRepository(conn *mongo.Client) *WhaleRepository {
	db := conn.Database("recifi")

	return &WhaleRepository{
		conn:   conn,
		whales: db.Collection("whales"),
		tokens: db.Collection("whale_tokens"),
	}
}

func (r *WhaleRepository) Add(whale *structs.Whale) error {
	whale.CreatedAt = time.Now().UTC()
	whale.UpdatedAt = whale.CreatedAt

	_, err := r.whales.InsertOne(context.TODO(), whale)

	return err
}

func (r *WhaleRepository) List() ([]structs.Whale, error) {
	cursor, err := r.whales.Find(context.TODO(), bson.D{})
	if err != nil {
		return nil, err
	}

	var out []structs.Whale
	if err := cursor.All(context.TODO(), &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *WhaleRepository) Load(walletAddress string) (*structs.Whale, error) {
	var result structs.Whale

	if err := r.whales.FindOne(context.TODO(), bson.D{{Key: "wallet_address", Value: walletAddress}}).Decode(&result); err != nil {
		return &result, err
	}

	return &result, nil
}

func (r *WhaleRepository) UpdateChanges(id primitive.ObjectID, whale *structs.Whale) error {
	_, err := r.whales.UpdateOne(
		context.TODO(),
		bson.D{{Key: "_id", Value: id}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "percentage_change_24h", Value: whale.PercentageChange24h},
			{Key: "price_change_7d", Value: whale.PriceChange7Days},
			{Key: "percentage_change_7d", Value: whale.PercentageChange7Days},
			{Key: "price_change_30d", Value: whale.PriceChange30Days},
			{Key: "percentage_change_30d", Value: whale.PercentageChange30Days},
			{Key: "price_change_1y", Value: whale.PriceChange1Year},
			{Key: "percentage_change_1y", Value: whale.PercentageChange1Year},
			{Key: "updated_at", Value: time.Now().UTC()},
		}}},
	)

	return err
}

// ReplaceTokens drops the previous bought-token snapshot and stores the new
// one, the alert pass always works off a fresh collection.
func (r *WhaleRepository) ReplaceTokens(tokens []structs.WhaleToken) error {
	if _, err := r.tokens.DeleteMany(context.TODO(), bson.D{}); err != nil {
		return err
	}

	if len(tokens) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(tokens))
	for i := range tokens {
		tokens[i].CreatedAt = time.Now().UTC()
		docs = append(docs, tokens[i])
	}

	_, err := r.tokens.InsertMany(context.TODO(), docs)

	return err
}

// TokenCounts returns, per token address, how many whales bought it.
func (r *WhaleRepository) TokenCounts() (map[string]int, error) {
	cursor, err := r.tokens.Aggregate(context.TODO(), mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$token_address"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	})
	if err != nil {
		return nil, err
	}

	var rows []struct {
		TokenAddress string `bson:"_id"`
		Count        int    `bson:"count"`
	}
	if err := cursor.All(context.TODO(), &rows); err != nil {
		return nil, err
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.TokenAddress] = row.Count
	}

	return out, nil
}
