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
)

const usersCollection = "users"

// UserRepository persists user accounts. Documents are keyed by an
// application-generated uuid in the "id" field, not the Mongo _id.
type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID               string    `bson:"id"`
	Email            string    `bson:"email"`
	Username         string    `bson:"username"`
	FullName         string    `bson:"full_name"`
	Role             string    `bson:"user_type"`
	PasswordHash     string    `bson:"password"`
	IsActive         bool      `bson:"is_active"`
	ProfileCompleted bool      `bson:"profile_completed"`
	CreatedAt        time.Time `bson:"created_at"`
}

// Create inserts the account. The unique indexes on email and username
// make the insert itself the authoritative duplicate check.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		ID:               user.ID,
		Email:            user.Email,
		Username:         user.Username,
		FullName:         user.FullName,
		Role:             user.Role,
		PasswordHash:     user.PasswordHash,
		IsActive:         user.IsActive,
		ProfileCompleted: user.ProfileCompleted,
		CreatedAt:        user.CreatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrUserExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return userToDomain(doc)
}

// MarkProfileCompleted flips the denormalized profile_completed flag.
func (r *UserRepository) MarkProfileCompleted(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"profile_completed": true}})
	if err != nil {
		return fmt.Errorf("mark profile completed: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique indexes on email and username that
// back the registration conflict contract.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

// userToDomain is the explicit decode step from stored shape to typed
// entity; a document missing its identity fields is corrupt, not a
// shape to be assumed.
func userToDomain(doc userDoc) (*domain.User, error) {
	if doc.ID == "" || doc.Email == "" {
		return nil, fmt.Errorf("%w: user document missing id or email", domain.ErrCorruptDocument)
	}
	return &domain.User{
		ID:               doc.ID,
		Email:            doc.Email,
		Username:         doc.Username,
		FullName:         doc.FullName,
		Role:             doc.Role,
		PasswordHash:     doc.PasswordHash,
		IsActive:         doc.IsActive,
		ProfileCompleted: doc.ProfileCompleted,
		CreatedAt:        doc.CreatedAt.UTC(),
	}, nil
}
