package repositories

import (
	"context"
	"errors"
	"time"

	"dish-dash-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrItemNotFound      = errors.New("item not found")
	ErrDuplicateItemName = errors.New("item name already exists")
)

type ItemRepository interface {
	Insert(ctx context.Context, item *models.Item) error
	List(ctx context.Context) ([]models.Item, error)
	FindByItemID(ctx context.Context, itemID string) (*models.Item, error)
	Update(ctx context.Context, itemID string, update primitive.D) (*models.Item, error)
	Delete(ctx context.Context, itemID string) error
}

type mongoItemRepository struct {
	collection *mongo.Collection
}

func NewItemRepository(collection *mongo.Collection) ItemRepository {
	return &mongoItemRepository{collection: collection}
}

// EnsureItemIndexes creates the unique index on the item name. Called once
// at startup.
func EnsureItemIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *mongoItemRepository) Insert(ctx context.Context, item *models.Item) error {
	_, err := r.collection.InsertOne(ctx, item)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateItemName
	}
	return err
}

func (r *mongoItemRepository) List(ctx context.Context) ([]models.Item, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Item{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *mongoItemRepository) FindByItemID(ctx context.Context, itemID string) (*models.Item, error) {
	var item models.Item
	err := r.collection.FindOne(ctx, bson.M{"item_id": itemID}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mongoItemRepository) Update(ctx context.Context, itemID string, updateObj primitive.D) (*models.Item, error) {
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var item models.Item
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"item_id": itemID},
		bson.D{{Key: "$set", Value: updateObj}},
		opts,
	).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrItemNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, ErrDuplicateItemName
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mongoItemRepository) Delete(ctx context.Context, itemID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"item_id": itemID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}
