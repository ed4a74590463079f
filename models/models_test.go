package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/content-site-backend/database/databasetest"
	"github.com/rpupo63/content-site-backend/models"
)

func TestUserDisplayName(t *testing.T) {
	tests := []struct {
		user models.User
		want string
	}{
		{models.User{Username: "alice", FirstName: "Alice", LastName: "Liddell"}, "Alice Liddell"},
		{models.User{Username: "alice", FirstName: "Alice"}, "Alice"},
		{models.User{Username: "alice", LastName: "Liddell"}, "alice"},
		{models.User{Username: "alice"}, "alice"},
	}
	for _, tt := range tests {
		if got := tt.user.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%+v) = %q, want %q", tt.user, got, tt.want)
		}
	}
}

func TestPostTagBySlug(t *testing.T) {
	post := models.Post{Tags: []models.Tag{
		{Name: "Golang", Slug: "golang"},
		{Name: "Unit Testing", Slug: "testing"},
	}}

	tag, ok := post.TagBySlug("testing")
	if !ok || tag.Name != "Unit Testing" {
		t.Errorf("TagBySlug(testing) = %+v, %v", tag, ok)
	}
	if _, ok := post.TagBySlug("missing"); ok {
		t.Error("TagBySlug(missing) should not be found")
	}
}

func TestBeforeCreateAssignsIDs(t *testing.T) {
	db := databasetest.Open(t)

	fixed := uuid.New()
	kept := &models.Category{ID: fixed, Name: "Fixed", Slug: "fixed"}
	if err := db.CategoryRepo().Add(kept); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if kept.ID != fixed {
		t.Errorf("ID = %v, want caller supplied %v", kept.ID, fixed)
	}

	generated := &models.Category{Name: "Generated", Slug: "generated"}
	if err := db.CategoryRepo().Add(generated); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if generated.ID == uuid.Nil {
		t.Error("ID was not generated")
	}
}

func TestColumnMismatchReport(t *testing.T) {
	db := databasetest.Open(t)
	gdb := db.PostRepo().GetDB()

	if got := models.GenerateColumnMismatchReport(gdb); got != 0 {
		t.Errorf("mismatches after migration = %d, want 0", got)
	}

	if err := gdb.Exec("ALTER TABLE pages ADD COLUMN legacy_views INTEGER").Error; err != nil {
		t.Fatalf("alter: %v", err)
	}
	if got := models.GenerateColumnMismatchReport(gdb); got != 1 {
		t.Errorf("mismatches = %d, want 1", got)
	}
}
