package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/creatorhub/marketplace/internal/core/domain"
	"github.com/creatorhub/marketplace/internal/core/ports"
)

const listingsCollection = "service_listings"

// ListingRepository persists service listings. Search is a direct
// translation of the filter into Mongo predicates; the text index over
// title/description/tags backs the free-text search.
type ListingRepository struct {
	coll *mongo.Collection
}

func NewListingRepository(db *mongo.Database) *ListingRepository {
	return &ListingRepository{coll: db.Collection(listingsCollection)}
}

type listingDoc struct {
	ID                string    `bson:"id"`
	CreatorID         string    `bson:"creator_id"`
	Title             string    `bson:"title"`
	Description       string    `bson:"description"`
	Category          string    `bson:"category"`
	Tags              []string  `bson:"tags"`
	BasePrice         float64   `bson:"base_price"`
	DeliveryTimeDays  int       `bson:"delivery_time_days"`
	RevisionsIncluded int       `bson:"revisions_included"`
	Images            []string  `bson:"images"`
	IsActive          bool      `bson:"is_active"`
	CreatedAt         time.Time `bson:"created_at"`
	UpdatedAt         time.Time `bson:"updated_at"`
}

func (r *ListingRepository) Create(ctx context.Context, l *domain.ServiceListing) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, listingToDoc(l)); err != nil {
		return fmt.Errorf("insert listing: %w", err)
	}
	return nil
}

func (r *ListingRepository) FindByID(ctx context.Context, id string) (*domain.ServiceListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc listingDoc
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("find listing: %w", err)
	}
	return listingToDomain(doc)
}

// Update applies the non-nil fields and returns the updated document.
func (r *ListingRepository) Update(ctx context.Context, id string, upd ports.ListingUpdate) (*domain.ServiceListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Tags != nil {
		set["tags"] = upd.Tags
	}
	if upd.BasePrice != nil {
		set["base_price"] = *upd.BasePrice
	}
	if upd.DeliveryTimeDays != nil {
		set["delivery_time_days"] = *upd.DeliveryTimeDays
	}
	if upd.RevisionsIncluded != nil {
		set["revisions_included"] = *upd.RevisionsIncluded
	}
	if upd.Images != nil {
		set["images"] = upd.Images
	}
	if upd.IsActive != nil {
		set["is_active"] = *upd.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc listingDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("update listing: %w", err)
	}
	return listingToDomain(doc)
}

// List translates the filter into a Mongo query. Inactive listings are
// always excluded; price bounds are inclusive.
func (r *ListingRepository) List(ctx context.Context, filter ports.ListingFilter) ([]*domain.ServiceListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"is_active": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["base_price"] = price
	}
	if filter.Search != "" {
		query["$text"] = bson.M{"$search": filter.Search}
	}

	opts := options.Find().
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))

	return r.find(ctx, query, opts)
}

// ListByCreator returns the creator's active listings.
func (r *ListingRepository) ListByCreator(ctx context.Context, creatorID string) ([]*domain.ServiceListing, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.find(ctx, bson.M{"creator_id": creatorID, "is_active": true}, options.Find())
}

func (r *ListingRepository) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*domain.ServiceListing, error) {
	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find listings: %w", err)
	}
	defer cur.Close(ctx)

	listings := []*domain.ServiceListing{}
	for cur.Next(ctx) {
		var doc listingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
		}
		l, err := listingToDomain(doc)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate listings: %w", err)
	}
	return listings, nil
}

// EnsureIndexes creates the search and ownership indexes, including
// the text index backing the free-text search parameter.
func (r *ListingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
		{Keys: bson.D{{Key: "base_price", Value: 1}}},
		{Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "description", Value: "text"},
			{Key: "tags", Value: "text"},
		}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func listingToDoc(l *domain.ServiceListing) listingDoc {
	return listingDoc{
		ID:                l.ID,
		CreatorID:         l.CreatorID,
		Title:             l.Title,
		Description:       l.Description,
		Category:          l.Category,
		Tags:              l.Tags,
		BasePrice:         l.BasePrice,
		DeliveryTimeDays:  l.DeliveryTimeDays,
		RevisionsIncluded: l.RevisionsIncluded,
		Images:            l.Images,
		IsActive:          l.IsActive,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func listingToDomain(doc listingDoc) (*domain.ServiceListing, error) {
	if doc.ID == "" || doc.CreatorID == "" {
		return nil, fmt.Errorf("%w: listing document missing id or creator_id", domain.ErrCorruptDocument)
	}
	l := &domain.ServiceListing{
		ID:                doc.ID,
		CreatorID:         doc.CreatorID,
		Title:             doc.Title,
		Description:       doc.Description,
		Category:          doc.Category,
		Tags:              doc.Tags,
		BasePrice:         doc.BasePrice,
		DeliveryTimeDays:  doc.DeliveryTimeDays,
		RevisionsIncluded: doc.RevisionsIncluded,
		Images:            doc.Images,
		IsActive:          doc.IsActive,
		CreatedAt:         doc.CreatedAt.UTC(),
		UpdatedAt:         doc.UpdatedAt.UTC(),
	}
	if l.Tags == nil {
		l.Tags = []string{}
	}
	if l.Images == nil {
		l.Images = []string{}
	}
	return l, nil
}
