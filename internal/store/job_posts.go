package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/weblanjutan/jobseeker-api/internal/apperror"
	"github.com/weblanjutan/jobseeker-api/internal/models"
	"github.com/weblanjutan/jobseeker-api/internal/sequence"
)

var newestFirst = bson.D{{Key: "created_at", Value: -1}}

// JobPosts persists employer job posts. Deleting a post sweeps its
// applications. Reads attach the posting user's name and email.
type JobPosts struct {
	db  *mongo.Database
	seq *sequence.Store
}

func NewJobPosts(db *mongo.Database, seq *sequence.Store) *JobPosts {
	return &JobPosts{db: db, seq: seq}
}

func (s *JobPosts) coll() *mongo.Collection { return s.db.Collection(jobPostsCollection) }

func (s *JobPosts) Create(ctx context.Context, userID int, req models.JobPostCreate) (*models.JobPost, error) {
	id, err := s.seq.Next(ctx, jobPostsCollection)
	if err != nil {
		return nil, err
	}

	post := &models.JobPost{
		ID:           id,
		UserID:       userID,
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		JobType:      req.JobType,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.coll().InsertOne(ctx, post); err != nil {
		return nil, fmt.Errorf("insert job post: %w", err)
	}
	s.attachOwners(ctx, []*models.JobPost{post})
	return post, nil
}

func (s *JobPosts) Get(ctx context.Context, id int) (*models.JobPost, error) {
	var post models.JobPost
	err := s.coll().FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperror.Newf(apperror.ErrNotFound, "Job post with ID %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("find job post %d: %w", id, err)
	}
	s.attachOwners(ctx, []*models.JobPost{&post})
	return &post, nil
}

func (s *JobPosts) List(ctx context.Context, f models.JobPostFilter, skip, limit int) ([]models.JobPost, int64, error) {
	posts, total, err := findPage[models.JobPost](ctx, s.coll(), jobPostFilterQuery(f), newestFirst, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	s.attachOwnersSlice(ctx, posts)
	return posts, total, nil
}

func (s *JobPosts) ListByUser(ctx context.Context, userID, skip, limit int) ([]models.JobPost, int64, error) {
	posts, total, err := findPage[models.JobPost](ctx, s.coll(), bson.M{"user_id": userID}, newestFirst, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	s.attachOwnersSlice(ctx, posts)
	return posts, total, nil
}

func (s *JobPosts) Update(ctx context.Context, id int, upd models.JobPostUpdate) (*models.JobPost, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Salary bounds must stay consistent after the merge.
	salaryMin, salaryMax := existing.SalaryMin, existing.SalaryMax
	if upd.SalaryMin != nil {
		salaryMin = *upd.SalaryMin
	}
	if upd.SalaryMax != nil {
		salaryMax = *upd.SalaryMax
	}
	if salaryMin > salaryMax {
		return nil, apperror.Newf(apperror.ErrBadRequest, "salary_min cannot exceed salary_max")
	}

	set := jobPostSetFields(upd)
	if len(set) > 0 {
		set["updated_at"] = time.Now().UTC()
		if _, err := s.coll().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set}); err != nil {
			return nil, fmt.Errorf("update job post %d: %w", id, err)
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the post and every application referencing it.
func (s *JobPosts) Delete(ctx context.Context, id int) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if _, err := s.coll().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("delete job post %d: %w", id, err)
	}
	if _, err := s.db.Collection(applicationsCollection).DeleteMany(ctx, bson.M{"job_post_id": id}); err != nil {
		return fmt.Errorf("delete applications of job post %d: %w", id, err)
	}
	return nil
}

func (s *JobPosts) attachOwnersSlice(ctx context.Context, posts []models.JobPost) {
	refs := make([]*models.JobPost, len(posts))
	for i := range posts {
		refs[i] = &posts[i]
	}
	s.attachOwners(ctx, refs)
}

// attachOwners fills UserName/UserEmail with a single batched lookup.
// Posts whose owner no longer exists stay unenriched.
func (s *JobPosts) attachOwners(ctx context.Context, posts []*models.JobPost) {
	if len(posts) == 0 {
		return
	}
	ids := make([]int, 0, len(posts))
	seen := make(map[int]bool, len(posts))
	for _, p := range posts {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			ids = append(ids, p.UserID)
		}
	}

	cursor, err := s.db.Collection(usersCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return
	}
	defer cursor.Close(ctx)

	var owners []models.User
	if err := cursor.All(ctx, &owners); err != nil {
		return
	}
	byID := make(map[int]models.User, len(owners))
	for _, u := range owners {
		byID[u.ID] = u
	}
	for _, p := range posts {
		if owner, ok := byID[p.UserID]; ok {
			p.UserName = owner.Name
			p.UserEmail = owner.Email
		}
	}
}

// jobPostFilterQuery reproduces the listing filter semantics:
// case-insensitive title substring, exact job type, and salary bounds
// combined with $and when both are present.
func jobPostFilterQuery(f models.JobPostFilter) bson.M {
	query := bson.M{}
	if f.JobType != "" {
		query["job_type"] = f.JobType
	}
	if f.Title != "" {
		query["title"] = bson.M{"$regex": primitive.Regex{Pattern: f.Title, Options: "i"}}
	}
	if f.MinSalary != nil {
		query["salary_min"] = bson.M{"$gte": *f.MinSalary}
	}
	if f.MaxSalary != nil {
		if minQuery, ok := query["salary_min"]; ok {
			delete(query, "salary_min")
			query["$and"] = []bson.M{
				{"salary_min": minQuery},
				{"salary_max": bson.M{"$lte": *f.MaxSalary}},
			}
		} else {
			query["salary_max"] = bson.M{"$lte": *f.MaxSalary}
		}
	}
	return query
}

func jobPostSetFields(upd models.JobPostUpdate) bson.M {
	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Company != nil {
		set["company"] = *upd.Company
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.JobType != nil {
		set["job_type"] = *upd.JobType
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Requirements != nil {
		set["requirements"] = *upd.Requirements
	}
	if upd.SalaryMin != nil {
		set["salary_min"] = *upd.SalaryMin
	}
	if upd.SalaryMax != nil {
		set["salary_max"] = *upd.SalaryMax
	}
	return set
}
