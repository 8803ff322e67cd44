package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func paginationContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	c := paginationContext(t, "/users")
	skip, limit, err := parsePagination(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skip != 0 || limit != 10 {
		t.Fatalf("got skip=%d limit=%d, want 0 and 10", skip, limit)
	}
}

func TestParsePaginationExplicit(t *testing.T) {
	c := paginationContext(t, "/users?skip=20&limit=50")
	skip, limit, err := parsePagination(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if skip != 20 || limit != 50 {
		t.Fatalf("got skip=%d limit=%d, want 20 and 50", skip, limit)
	}
}

func TestParsePaginationRejectsBadValues(t *testing.T) {
	for _, target := range []string{
		"/users?skip=-1",
		"/users?skip=abc",
		"/users?limit=0",
		"/users?limit=101",
		"/users?limit=ten",
	} {
		c := paginationContext(t, target)
		if _, _, err := parsePagination(c); err == nil {
			t.Fatalf("expected %q to be rejected", target)
		}
	}
}

func TestPathID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "17"}}
	id, err := pathID(c, "id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 17 {
		t.Fatalf("got %d, want 17", id)
	}

	c.Params = gin.Params{{Key: "id", Value: "seventeen"}}
	if _, err := pathID(c, "id"); err == nil {
		t.Fatal("expected non-integer id to be rejected")
	}
}
