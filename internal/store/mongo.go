// server/internal/store/mongo.go
package store

import (
	"context"
	"time"

	"food-bridge-api-server/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const listingCollection = "listings"

// MongoListingStore implements ListingStore on a MongoDB collection.
type MongoListingStore struct {
	DB *mongo.Database
}

func NewMongoListingStore(db *mongo.Database) *MongoListingStore {
	return &MongoListingStore{DB: db}
}

func (s *MongoListingStore) collection() *mongo.Collection {
	return s.DB.Collection(listingCollection)
}

func (s *MongoListingStore) Insert(ctx context.Context, listing *models.Listing) error {
	result, err := s.collection().InsertOne(ctx, listing)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		listing.ID = oid
	}
	return nil
}

func (s *MongoListingStore) GetByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := s.collection().FindOne(ctx, bson.M{"listingID": id}).Decode(&listing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (s *MongoListingStore) ListActive(ctx context.Context) ([]models.Listing, error) {
	filter := bson.M{"status": bson.M{"$in": models.ClaimableStatuses}}
	return s.find(ctx, filter)
}

func (s *MongoListingStore) ListByDonor(ctx context.Context, donorID string) ([]models.Listing, error) {
	return s.find(ctx, bson.M{"donorID": donorID})
}

func (s *MongoListingStore) find(ctx context.Context, filter bson.M) ([]models.Listing, error) {
	cursor, err := s.collection().Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err = cursor.All(ctx, &listings); err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	return listings, nil
}

func (s *MongoListingStore) SetPhotoURL(ctx context.Context, id, url string) error {
	_, err := s.collection().UpdateOne(ctx, bson.M{"listingID": id}, bson.M{"$set": bson.M{
		"photoURL":    url,
		"lastUpdated": time.Now(),
	}})
	return err
}

func (s *MongoListingStore) UpdateStatus(ctx context.Context, id string, from []string, to string) (bool, error) {
	filter := bson.M{"listingID": id, "status": bson.M{"$in": from}}
	update := bson.M{"$set": bson.M{"status": to, "lastUpdated": time.Now()}}

	result, err := s.collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (s *MongoListingStore) ApplyClaim(ctx context.Context, id string, from []string, upd ClaimUpdate) (bool, error) {
	set := bson.M{
		"status":            upd.Status,
		"requestedBy":       upd.RequestedBy,
		"requestedByOrg":    upd.RequestedByOrg,
		"requestedQuantity": upd.RequestedQuantity,
		"requestNotes":      upd.RequestNotes,
		"requestedAt":       upd.RequestedAt,
		"lastUpdated":       time.Now(),
	}
	if upd.SetQuantity {
		set["quantity"] = upd.Quantity
	}

	// The status condition is the "first claimer wins" guard: a concurrent
	// claim that landed since our read leaves nothing to match here.
	filter := bson.M{"listingID": id, "status": bson.M{"$in": from}}
	result, err := s.collection().UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}
