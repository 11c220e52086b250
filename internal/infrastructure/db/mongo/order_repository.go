package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/creatorhub/marketplace/internal/core/domain"
)

const ordersCollection = "orders"

// OrderRepository persists orders.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type orderDoc struct {
	ID           string    `bson:"id"`
	ServiceID    string    `bson:"service_id"`
	BuyerID      string    `bson:"buyer_id"`
	CreatorID    string    `bson:"creator_id"`
	Status       string    `bson:"status"`
	Price        float64   `bson:"price"`
	Requirements string    `bson:"requirements"`
	DeliveryDate time.Time `bson:"delivery_date"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := orderDoc{
		ID:           o.ID,
		ServiceID:    o.ServiceID,
		BuyerID:      o.BuyerID,
		CreatorID:    o.CreatorID,
		Status:       string(o.Status),
		Price:        o.Price,
		Requirements: o.Requirements,
		DeliveryDate: o.DeliveryDate,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// ListByUser returns orders where the user is buyer or creator, newest
// first.
func (r *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"$or": bson.A{
		bson.M{"buyer_id": userID},
		bson.M{"creator_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cur.Close(ctx)

	orders := []*domain.Order{}
	for cur.Next(ctx) {
		var doc orderDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
		}
		o, err := orderToDomain(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	return orders, nil
}

// EnsureIndexes creates the buyer/creator lookup indexes.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "buyer_id", Value: 1}}},
		{Keys: bson.D{{Key: "creator_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func orderToDomain(doc orderDoc) (*domain.Order, error) {
	if doc.ID == "" || doc.ServiceID == "" {
		return nil, fmt.Errorf("%w: order document missing id or service_id", domain.ErrCorruptDocument)
	}
	return &domain.Order{
		ID:           doc.ID,
		ServiceID:    doc.ServiceID,
		BuyerID:      doc.BuyerID,
		CreatorID:    doc.CreatorID,
		Status:       domain.OrderStatus(doc.Status),
		Price:        doc.Price,
		Requirements: doc.Requirements,
		DeliveryDate: doc.DeliveryDate.UTC(),
		CreatedAt:    doc.CreatedAt.UTC(),
		UpdatedAt:    doc.UpdatedAt.UTC(),
	}, nil
}
