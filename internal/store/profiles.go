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

// Profiles persists job-seeker profiles, at most one per user.
type Profiles struct {
	db  *mongo.Database
	seq *sequence.Store
}

func NewProfiles(db *mongo.Database, seq *sequence.Store) *Profiles {
	return &Profiles{db: db, seq: seq}
}

func (s *Profiles) coll() *mongo.Collection { return s.db.Collection(profilesCollection) }

func (s *Profiles) Create(ctx context.Context, req models.ProfileCreate) (*models.Profile, error) {
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": req.UserID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Newf(apperror.ErrNotFound, "User with ID %d not found", req.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("check profile user: %w", err)
	}

	if err := s.coll().FindOne(ctx, bson.M{"user_id": req.UserID}).Err(); err == nil {
		return nil, apperror.Newf(apperror.ErrConflict, "Profile already exists for user %d", req.UserID)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("check existing profile: %w", err)
	}

	id, err := s.seq.Next(ctx, profilesCollection)
	if err != nil {
		return nil, err
	}

	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}
	profile := &models.Profile{
		ID:          id,
		UserID:      req.UserID,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Age:         req.Age,
		Gender:      req.Gender,
		Description: req.Description,
		Skills:      skills,
		Experience:  req.Experience,
		Education:   req.Education,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.coll().InsertOne(ctx, profile); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Newf(apperror.ErrConflict, "Profile already exists for user %d", req.UserID)
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	return profile, nil
}

func (s *Profiles) GetByID(ctx context.Context, id int) (*models.Profile, error) {
	var profile models.Profile
	err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Newf(apperror.ErrNotFound, "Profile with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find profile %d: %w", id, err)
	}
	return &profile, nil
}

func (s *Profiles) GetByUserID(ctx context.Context, userID int) (*models.Profile, error) {
	var profile models.Profile
	err := s.coll().FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Newf(apperror.ErrNotFound, "Profile not found for user %d", userID)
	}
	if err != nil {
		return nil, fmt.Errorf("find profile by user %d: %w", userID, err)
	}
	return &profile, nil
}

func (s *Profiles) List(ctx context.Context, skip, limit int) ([]models.Profile, int64, error) {
	return findPage[models.Profile](ctx, s.coll(), bson.M{}, nil, skip, limit)
}

func (s *Profiles) Update(ctx context.Context, id int, upd models.ProfileUpdate) (*models.Profile, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.applyUpdate(ctx, bson.M{"_id": id}, upd); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

func (s *Profiles) UpdateByUser(ctx context.Context, userID int, upd models.ProfileUpdate) (*models.Profile, error) {
	if _, err := s.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.applyUpdate(ctx, bson.M{"user_id": userID}, upd); err != nil {
		return nil, err
	}
	return s.GetByUserID(ctx, userID)
}

func (s *Profiles) Delete(ctx context.Context, id int) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.coll().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete profile %d: %w", id, err)
	}
	return nil
}

func (s *Profiles) DeleteByUser(ctx context.Context, userID int) error {
	if _, err := s.GetByUserID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.coll().DeleteOne(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("delete profile of user %d: %w", userID, err)
	}
	return nil
}

func (s *Profiles) applyUpdate(ctx context.Context, filter bson.M, upd models.ProfileUpdate) error {
	set := profileSetFields(upd)
	if len(set) == 0 {
		return nil
	}
	set["updated_at"] = time.Now().UTC()
	if _, err := s.coll().UpdateOne(ctx, filter, bson.M{"$set": set}); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

func profileSetFields(upd models.ProfileUpdate) bson.M {
	set := bson.M{}
	if upd.FullName != nil {
		set["full_name"] = *upd.FullName
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Age != nil {
		set["age"] = *upd.Age
	}
	if upd.Gender != nil {
		set["gender"] = *upd.Gender
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Skills != nil {
		set["skills"] = *upd.Skills
	}
	if upd.Experience != nil {
		set["experience"] = *upd.Experience
	}
	if upd.Education != nil {
		set["education"] = *upd.Education
	}
	return set
}
