package mongo

import (
	"context"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
	"accounts/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements repository.UserRepository on a MongoDB collection.
type userRepository struct {
	collection *mongodriver.Collection
	now        func() time.Time
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(collection *mongodriver.Collection) repository.UserRepository {
	return &userRepository{
		collection: collection,
		now:        time.Now,
	}
}

// FindByEmail retrieves a single user by the exact email it registered with.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"email": email}, "failed to find user by email")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, details string) (*entity.User, error) {
	var doc userDocument
	if err := repo.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, details)
	}

	user, err := toUserDomain(&doc)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "stored user has a malformed id")
	}

	return user, nil
}

// Create inserts a new user document. The store assigns the id.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := repo.now().UTC()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	if _, err := repo.collection.InsertOne(ctx, fromUserDomain(user)); err != nil {
		user.ID = uuid.Nil
		if mongodriver.IsDuplicateKeyError(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	return nil
}

// UpdateLastLogin sets lastLogin on the user document.
func (repo *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result, err := repo.collection.UpdateOne(ctx,
		bson.M{"_id": id.String()},
		bson.M{"$set": bson.M{"lastLogin": at, "updatedAt": repo.now().UTC()}},
	)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update last login")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
