package mongo

import (
	"recifi/internal/repository/mongo/structs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockery --case=snake --name=WhaleRepo

type WhaleRepo interface {
	Add(whale *structs.Whale) error
	List() ([]structs.Whale, error)
	Load(walletAddress string) (*structs.Whale, error)
	UpdateChanges(id primitive.ObjectID, whale *structs.Whale) error
	ReplaceTokens(tokens []structs.WhaleToken) error
	TokenCounts() (map[string]int, error)
}
