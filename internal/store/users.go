package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weblanjutan/jobseeker-api/internal/apperror"
	"github.com/weblanjutan/jobseeker-api/internal/models"
	"github.com/weblanjutan/jobseeker-api/internal/sequence"
)

// Users persists user accounts. Deleting a user sweeps their job
// posts and applications; the profile is intentionally left behind.
type Users struct {
	db  *mongo.Database
	seq *sequence.Store
}

func NewUsers(db *mongo.Database, seq *sequence.Store) *Users {
	return &Users{db: db, seq: seq}
}

func (s *Users) coll() *mongo.Collection { return s.db.Collection(usersCollection) }

// Create inserts a new user with an allocated ID. hashedPassword must
// already be a bcrypt digest.
func (s *Users) Create(ctx context.Context, req models.UserCreate, hashedPassword string) (*models.User, error) {
	if err := s.checkEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	id, err := s.seq.Next(ctx, usersCollection)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:             id,
		Name:           req.Name,
		Email:          req.Email,
		Role:           req.Role,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}
	if _, err := s.coll().InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Newf(apperror.ErrConflict, "Email %s already registered", req.Email)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *Users) GetByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Newf(apperror.ErrNotFound, "User with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}

func (s *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.coll().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Newf(apperror.ErrNotFound, "User with email %s not found", email)
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &user, nil
}

func (s *Users) List(ctx context.Context, skip, limit int) ([]models.User, int64, error) {
	return findPage[models.User](ctx, s.coll(), bson.M{}, nil, skip, limit)
}

func (s *Users) ListByRole(ctx context.Context, role models.Role, skip, limit int) ([]models.User, int64, error) {
	return findPage[models.User](ctx, s.coll(), bson.M{"role": role}, nil, skip, limit)
}

// Update applies the supplied fields. hashedPassword, when non-empty,
// replaces the stored digest; callers hash before calling.
func (s *Users) Update(ctx context.Context, id int, upd models.UserUpdate, hashedPassword string) (*models.User, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Email != nil && *upd.Email != existing.Email {
		if err := s.checkEmailFree(ctx, *upd.Email); err != nil {
			return nil, err
		}
	}

	set := userSetFields(upd, hashedPassword)
	if len(set) > 0 {
		set["updated_at"] = time.Now().UTC()
		if _, err := s.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			if mongo.IsDuplicateKeyError(err) && upd.Email != nil {
				return nil, apperror.Newf(apperror.ErrConflict, "Email %s already registered", *upd.Email)
			}
			return nil, fmt.Errorf("update user %d: %w", id, err)
		}
	}
	return s.GetByID(ctx, id)
}

// Delete removes the user and cascades to their job posts and
// applications.
func (s *Users) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.coll().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	if _, err := s.db.Collection(jobPostsCollection).DeleteMany(ctx, bson.M{"user_id": id}); err != nil {
		return fmt.Errorf("delete job posts of user %d: %w", id, err)
	}
	if _, err := s.db.Collection(applicationsCollection).DeleteMany(ctx, bson.M{"user_id": id}); err != nil {
		return fmt.Errorf("delete applications of user %d: %w", id, err)
	}
	return nil
}

func (s *Users) checkEmailFree(ctx context.Context, email string) error {
	err := s.coll().FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return apperror.Newf(apperror.ErrConflict, "Email %s already registered", email)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check email: %w", err)
	}
	return nil
}

func userSetFields(upd models.UserUpdate, hashedPassword string) bson.M {
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Role != nil {
		set["role"] = *upd.Role
	}
	if hashedPassword != "" {
		set["hashed_password"] = hashedPassword
	}
	return set
}
