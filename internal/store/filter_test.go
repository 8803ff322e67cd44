package store

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/weblanjutan/jobseeker-api/internal/models"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestJobPostFilterQuery(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		got := jobPostFilterQuery(models.JobPostFilter{})
		if len(got) != 0 {
			t.Fatalf("expected empty query, got %v", got)
		}
	})

	t.Run("job type and title", func(t *testing.T) {
		got := jobPostFilterQuery(models.JobPostFilter{JobType: "Full-time", Title: "engineer"})
		if got["job_type"] != "Full-time" {
			t.Fatalf("job_type = %v", got["job_type"])
		}
		title, ok := got["title"].(bson.M)
		if !ok {
			t.Fatalf("title filter missing: %v", got)
		}
		regex, ok := title["$regex"].(primitive.Regex)
		if !ok || regex.Pattern != "engineer" || regex.Options != "i" {
			t.Fatalf("expected case-insensitive substring regex, got %v", title["$regex"])
		}
	})

	t.Run("min salary only", func(t *testing.T) {
		got := jobPostFilterQuery(models.JobPostFilter{MinSalary: intPtr(5000)})
		want := bson.M{"salary_min": bson.M{"$gte": 5000}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("max salary only", func(t *testing.T) {
		got := jobPostFilterQuery(models.JobPostFilter{MaxSalary: intPtr(9000)})
		want := bson.M{"salary_max": bson.M{"$lte": 9000}}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})

	t.Run("min and max combine under $and", func(t *testing.T) {
		got := jobPostFilterQuery(models.JobPostFilter{MinSalary: intPtr(5000), MaxSalary: intPtr(9000)})
		if _, stillThere := got["salary_min"]; stillThere {
			t.Fatal("salary_min should move under $and when both bounds are set")
		}
		and, ok := got["$and"].([]bson.M)
		if !ok || len(and) != 2 {
			t.Fatalf("expected two-clause $and, got %v", got)
		}
		wantMin := bson.M{"salary_min": bson.M{"$gte": 5000}}
		wantMax := bson.M{"salary_max": bson.M{"$lte": 9000}}
		if !reflect.DeepEqual(and[0], wantMin) || !reflect.DeepEqual(and[1], wantMax) {
			t.Fatalf("got %v", and)
		}
	})
}

func TestUserSetFields(t *testing.T) {
	if got := userSetFields(models.UserUpdate{}, ""); len(got) != 0 {
		t.Fatalf("expected no fields, got %v", got)
	}

	role := models.RoleEmployer
	got := userSetFields(models.UserUpdate{
		Name: strPtr("New Name"),
		Role: &role,
	}, "digest")
	want := bson.M{"name": "New Name", "role": models.RoleEmployer, "hashed_password": "digest"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if _, ok := got["email"]; ok {
		t.Fatal("absent fields must stay untouched")
	}
}

func TestProfileSetFields(t *testing.T) {
	if got := profileSetFields(models.ProfileUpdate{}); len(got) != 0 {
		t.Fatalf("expected no fields, got %v", got)
	}

	age := 30
	skills := []string{"Go", "MongoDB"}
	got := profileSetFields(models.ProfileUpdate{Age: &age, Skills: &skills})
	want := bson.M{"age": 30, "skills": skills}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestJobPostSetFields(t *testing.T) {
	if got := jobPostSetFields(models.JobPostUpdate{}); len(got) != 0 {
		t.Fatalf("expected no fields, got %v", got)
	}

	jobType := models.JobTypeFreelance
	got := jobPostSetFields(models.JobPostUpdate{
		Title:     strPtr("Senior Go Developer"),
		JobType:   &jobType,
		SalaryMin: intPtr(4000),
	})
	want := bson.M{"title": "Senior Go Developer", "job_type": models.JobTypeFreelance, "salary_min": 4000}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestApplicationSetFields(t *testing.T) {
	if got := applicationSetFields(models.ApplicationUpdate{}); len(got) != 0 {
		t.Fatalf("expected no fields, got %v", got)
	}

	status := models.ApplicationAccepted
	got := applicationSetFields(models.ApplicationUpdate{Status: &status, CVFilename: strPtr("cv.pdf")})
	want := bson.M{"status": models.ApplicationAccepted, "cv_filename": "cv.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
