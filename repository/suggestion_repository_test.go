package repository

import (
	"testing"
	"time"

	"github.com/Richiez14/Upiksugbox/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupSuggestionTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&entity.User{}, &entity.Suggestion{}, &entity.Comment{})
	require.NoError(t, err)

	return db
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	db := setupSuggestionTestDB(t)
	repo := NewSuggestionRepository(db)

	s := &entity.Suggestion{
		StudentName: "Ada",
		Department:  entity.DeptICT,
		Text:        "Wifi is down",
		Status:      entity.StatusPending,
	}
	require.NoError(t, repo.Create(s))
	assert.NotZero(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())

	s2 := &entity.Suggestion{
		StudentName: "Ada",
		Department:  entity.DeptICT,
		Text:        "Still down",
		Status:      entity.StatusPending,
	}
	require.NoError(t, repo.Create(s2))
	assert.Greater(t, s2.ID, s.ID, "identifiers should increase")
}

func TestListPublicFiltersAndOrders(t *testing.T) {
	db := setupSuggestionTestDB(t)
	repo := NewSuggestionRepository(db)

	hidden := &entity.Suggestion{Department: entity.DeptWelfare, Text: "hidden", Status: entity.StatusPending}
	require.NoError(t, repo.Create(hidden))

	older := &entity.Suggestion{Department: entity.DeptCatering, Text: "older", Status: entity.StatusPending, IsPublic: 1}
	older.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, repo.Create(older))

	newer := &entity.Suggestion{Department: entity.DeptCatering, Text: "newer", Status: entity.StatusPending, IsPublic: 1}
	require.NoError(t, repo.Create(newer))

	public, err := repo.ListPublic()
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "newer", public[0].Text, "newest first")
	assert.Equal(t, "older", public[1].Text)

	all, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3, "admin listing ignores visibility")
}

func TestListPublicEmptyIsNotNil(t *testing.T) {
	db := setupSuggestionTestDB(t)
	repo := NewSuggestionRepository(db)

	public, err := repo.ListPublic()
	require.NoError(t, err)
	assert.NotNil(t, public, "empty board must serialize as [], not null")
	assert.Len(t, public, 0)
}

func TestUpdatePartialLeavesOtherColumns(t *testing.T) {
	db := setupSuggestionTestDB(t)
	repo := NewSuggestionRepository(db)

	s := &entity.Suggestion{Department: entity.DeptICT, Text: "slow portal", Status: entity.StatusPending}
	require.NoError(t, repo.Create(s))

	require.NoError(t, repo.UpdatePartial(s.ID, map[string]any{"admin_response": "thanks"}))
	require.NoError(t, repo.UpdatePartial(s.ID, map[string]any{"status": entity.StatusReviewed}))

	got, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	require.NotNil(t, got.AdminResponse)
	assert.Equal(t, "thanks", *got.AdminResponse, "patching status must not touch the response")
	assert.Equal(t, entity.StatusReviewed, got.Status)
	assert.Equal(t, 0, got.IsPublic)

	// Same patch twice ends in the same state.
	require.NoError(t, repo.UpdatePartial(s.ID, map[string]any{"status": entity.StatusReviewed}))
	again, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, *got, *again)
}

func TestUpdatePartialMissingRowSucceeds(t *testing.T) {
	db := setupSuggestionTestDB(t)
	repo := NewSuggestionRepository(db)

	err := repo.UpdatePartial(9999, map[string]any{"status": entity.StatusReviewed})
	assert.NoError(t, err, "updates against unknown ids silently no-op")
}

func TestUpdatePartialEmptyPatchIsNoop(t *testing.T) {
	db := setupSuggestionTestDB(t)
	repo := NewSuggestionRepository(db)

	s := &entity.Suggestion{Department: entity.DeptOthers, Text: "noop", Status: entity.StatusPending}
	require.NoError(t, repo.Create(s))

	require.NoError(t, repo.UpdatePartial(s.ID, map[string]any{}))

	got, err := repo.FindByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, got.Status)
}
