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

// Applications persists job applications, at most one per
// (user, job post) pair.
type Applications struct {
	db  *mongo.Database
	seq *sequence.Store
}

func NewApplications(db *mongo.Database, seq *sequence.Store) *Applications {
	return &Applications{db: db, seq: seq}
}

func (s *Applications) coll() *mongo.Collection { return s.db.Collection(applicationsCollection) }

func (s *Applications) Create(ctx context.Context, req models.ApplicationCreate) (*models.Application, error) {
	err := s.db.Collection(usersCollection).FindOne(ctx, bson.M{"_id": req.UserID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Newf(apperror.ErrNotFound, "User with ID %d not found", req.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("check application user: %w", err)
	}

	err = s.db.Collection(jobPostsCollection).FindOne(ctx, bson.M{"_id": req.JobPostID}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Newf(apperror.ErrNotFound, "Job post with ID %d not found", req.JobPostID)
	}
	if err != nil {
		return nil, fmt.Errorf("check application job post: %w", err)
	}

	pair := bson.M{"user_id": req.UserID, "job_post_id": req.JobPostID}
	if err := s.coll().FindOne(ctx, pair).Err(); err == nil {
		return nil, apperror.Newf(apperror.ErrConflict, "You have already applied for this job")
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("check existing application: %w", err)
	}

	id, err := s.seq.Next(ctx, applicationsCollection)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.ApplicationPending
	}
	contentType := req.CVContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	application := &models.Application{
		ID:            id,
		UserID:        req.UserID,
		JobPostID:     req.JobPostID,
		Status:        status,
		CVData:        req.CVData,
		CVFilename:    req.CVFilename,
		CVContentType: contentType,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := s.coll().InsertOne(ctx, application); err != nil {
		// The unique (user_id, job_post_id) index wins the race the
		// pre-check cannot.
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperror.Newf(apperror.ErrConflict, "You have already applied for this job")
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return application, nil
}

func (s *Applications) Get(ctx context.Context, id int) (*models.Application, error) {
	var application models.Application
	err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&application)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Newf(apperror.ErrNotFound, "Application with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find application %d: %w", id, err)
	}
	return &application, nil
}

func (s *Applications) List(ctx context.Context, status models.ApplicationStatus, skip, limit int) ([]models.Application, int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return findPage[models.Application](ctx, s.coll(), filter, newestFirst, skip, limit)
}

func (s *Applications) ListByUser(ctx context.Context, userID, skip, limit int) ([]models.Application, int64, error) {
	return findPage[models.Application](ctx, s.coll(), bson.M{"user_id": userID}, newestFirst, skip, limit)
}

func (s *Applications) ListByJobPost(ctx context.Context, jobPostID, skip, limit int) ([]models.Application, int64, error) {
	return findPage[models.Application](ctx, s.coll(), bson.M{"job_post_id": jobPostID}, newestFirst, skip, limit)
}

func (s *Applications) Update(ctx context.Context, id int, upd models.ApplicationUpdate) (*models.Application, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	set := applicationSetFields(upd)
	if len(set) > 0 {
		set["updated_at"] = time.Now().UTC()
		if _, err := s.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return nil, fmt.Errorf("update application %d: %w", id, err)
		}
	}
	return s.Get(ctx, id)
}

func (s *Applications) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if _, err := s.coll().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete application %d: %w", id, err)
	}
	return nil
}

func applicationSetFields(upd models.ApplicationUpdate) bson.M {
	set := bson.M{}
	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.CVData != nil {
		set["cv_data"] = *upd.CVData
	}
	if upd.CVFilename != nil {
		set["cv_filename"] = *upd.CVFilename
	}
	if upd.CVContentType != nil {
		set["cv_content_type"] = *upd.CVContentType
	}
	return set
}
