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

const profilesCollection = "creator_profiles"

// ProfileRepository persists creator profiles, one per user, enforced
// by a unique index on user_id.
type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

type profileDoc struct {
	ID              string    `bson:"id"`
	UserID          string    `bson:"user_id"`
	Bio             string    `bson:"bio"`
	Skills          []string  `bson:"skills"`
	ExperienceLevel string    `bson:"experience_level"`
	PortfolioItems  []string  `bson:"portfolio_items"`
	Rating          float64   `bson:"rating"`
	TotalReviews    int       `bson:"total_reviews"`
	TotalEarnings   float64   `bson:"total_earnings"`
	CreatedAt       time.Time `bson:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at"`
}

func (r *ProfileRepository) Create(ctx context.Context, p *domain.CreatorProfile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := profileDoc{
		ID:              p.ID,
		UserID:          p.UserID,
		Bio:             p.Bio,
		Skills:          p.Skills,
		ExperienceLevel: p.ExperienceLevel,
		PortfolioItems:  p.PortfolioItems,
		Rating:          p.Rating,
		TotalReviews:    p.TotalReviews,
		TotalEarnings:   p.TotalEarnings,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProfileExists
		}
		return fmt.Errorf("insert profile: %w", err)
	}
	return nil
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.CreatorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc profileDoc
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profileToDomain(doc)
}

// Update applies the non-nil fields and returns the updated document.
func (r *ProfileRepository) Update(ctx context.Context, userID string, upd ports.ProfileUpdate) (*domain.CreatorProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Bio != nil {
		set["bio"] = *upd.Bio
	}
	if upd.Skills != nil {
		set["skills"] = upd.Skills
	}
	if upd.ExperienceLevel != nil {
		set["experience_level"] = *upd.ExperienceLevel
	}
	if upd.PortfolioItems != nil {
		set["portfolio_items"] = upd.PortfolioItems
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc profileDoc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profileToDomain(doc)
}

// EnsureIndexes creates the one-profile-per-user unique index.
func (r *ProfileRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func profileToDomain(doc profileDoc) (*domain.CreatorProfile, error) {
	if doc.ID == "" || doc.UserID == "" {
		return nil, fmt.Errorf("%w: profile document missing id or user_id", domain.ErrCorruptDocument)
	}
	p := &domain.CreatorProfile{
		ID:              doc.ID,
		UserID:          doc.UserID,
		Bio:             doc.Bio,
		Skills:          doc.Skills,
		ExperienceLevel: doc.ExperienceLevel,
		PortfolioItems:  doc.PortfolioItems,
		Rating:          doc.Rating,
		TotalReviews:    doc.TotalReviews,
		TotalEarnings:   doc.TotalEarnings,
		CreatedAt:       doc.CreatedAt.UTC(),
		UpdatedAt:       doc.UpdatedAt.UTC(),
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.PortfolioItems == nil {
		p.PortfolioItems = []string{}
	}
	return p, nil
}
