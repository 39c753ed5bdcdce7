package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-cms-backend/internal/types"
)

func TestGetAllScopedToOwner(t *testing.T) {
	db := testDB(t)
	_, mine := seedAccount(t, db, "mine@example.com")
	_, theirs := seedAccount(t, db, "theirs@example.com")

	svc := NewProjectService(db, testLogger(), nil)
	seedProject(t, db, mine, "Mine One", "mine-one")
	seedProject(t, db, mine, "Mine Two", "mine-two")
	seedProject(t, db, theirs, "Theirs", "theirs")

	page, err := svc.GetAll(ctx(), types.ListQuery{}, mine)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Data, 2)
	for _, p := range page.Data {
		assert.Equal(t, mine, p.ProfileID)
	}
}

func TestGetAllEmptyReturnsEmptySlice(t *testing.T) {
	db := testDB(t)
	_, profileID := seedAccount(t, db, "empty@example.com")

	svc := NewProjectService(db, testLogger(), nil)
	page, err := svc.GetAll(ctx(), types.ListQuery{}, profileID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), page.Total)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
}

func TestGetAllPaginationWindow(t *testing.T) {
	db := testDB(t)
	_, profileID := seedAccount(t, db, "pages@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	for _, slug := range []string{"a", "b", "c", "d", "e"} {
		seedProject(t, db, profileID, "Project "+slug, slug)
	}

	page, err := svc.GetAll(ctx(), types.ListQuery{
		Page:  2,
		Limit: 2,
		Sorts: []types.SortInput{{Key: "slug", Order: "asc"}},
	}, profileID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	require.Len(t, page.Data, 2)
	assert.Equal(t, "c", page.Data[0].Slug)
	assert.Equal(t, "d", page.Data[1].Slug)
}

func TestGetAllNoLimitReturnsEverything(t *testing.T) {
	db := testDB(t)
	_, profileID := seedAccount(t, db, "all@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	for _, slug := range []string{"a", "b", "c", "d"} {
		seedProject(t, db, profileID, "Project "+slug, slug)
	}

	page, err := svc.GetAll(ctx(), types.ListQuery{Limit: -1}, profileID)
	require.NoError(t, err)
	assert.Len(t, page.Data, 4)
}

func TestGetAllFilterContains(t *testing.T) {
	db := testDB(t)
	_, profileID := seedAccount(t, db, "filter@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	seedProject(t, db, profileID, "Weather Station", "weather-station")
	seedProject(t, db, profileID, "Chess Engine", "chess-engine")

	page, err := svc.GetAll(ctx(), types.ListQuery{
		Filters: []types.FilterInput{{Key: "title", Value: "WEATHER"}},
	}, profileID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "weather-station", page.Data[0].Slug)
}

func TestGetByIDOutOfScopeLooksMissing(t *testing.T) {
	db := testDB(t)
	_, mine := seedAccount(t, db, "mine@example.com")
	_, theirs := seedAccount(t, db, "theirs@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	project := seedProject(t, db, theirs, "Theirs", "theirs")

	row, err := svc.GetByID(ctx(), project.ID, mine)
	require.NoError(t, err)
	assert.Nil(t, row)

	row, err = svc.GetByID(ctx(), project.ID, theirs)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "theirs", row.Slug)
}

func TestUpdateOutOfScopeIsUnauthorized(t *testing.T) {
	db := testDB(t)
	_, mine := seedAccount(t, db, "mine@example.com")
	_, theirs := seedAccount(t, db, "theirs@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	project := seedProject(t, db, theirs, "Theirs", "theirs")

	title := "Hijacked"
	_, err := svc.UpdateFromRequest(ctx(), project.ID, mine, types.UpdateProjectRequest{Title: &title})
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The row must be untouched.
	row, err := svc.GetByID(ctx(), project.ID, theirs)
	require.NoError(t, err)
	assert.Equal(t, "Theirs", row.Title)
}

func TestUpdateAppliesOnlySetFields(t *testing.T) {
	db := testDB(t)
	_, profileID := seedAccount(t, db, "patch@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	project := seedProject(t, db, profileID, "Original", "original")

	desc := "now with a description"
	updated, err := svc.UpdateFromRequest(ctx(), project.ID, profileID,
		types.UpdateProjectRequest{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Original", updated.Title)
	assert.Equal(t, desc, updated.Description)
}

func TestDeleteReturnsPriorRow(t *testing.T) {
	db := testDB(t)
	_, profileID := seedAccount(t, db, "delete@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	project := seedProject(t, db, profileID, "Doomed", "doomed")

	deleted, err := svc.DeleteByID(ctx(), project.ID, profileID)
	require.NoError(t, err)
	assert.Equal(t, "doomed", deleted.Slug)

	row, err := svc.GetByID(ctx(), project.ID, profileID)
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestDeleteOutOfScopeIsUnauthorized(t *testing.T) {
	db := testDB(t)
	_, mine := seedAccount(t, db, "mine@example.com")
	_, theirs := seedAccount(t, db, "theirs@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	project := seedProject(t, db, theirs, "Theirs", "theirs")

	_, err := svc.DeleteByID(ctx(), project.ID, mine)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestDeleteBulkSkipsForeignRows(t *testing.T) {
	db := testDB(t)
	_, mine := seedAccount(t, db, "mine@example.com")
	_, theirs := seedAccount(t, db, "theirs@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	a := seedProject(t, db, mine, "A", "a")
	b := seedProject(t, db, mine, "B", "b")
	foreign := seedProject(t, db, theirs, "C", "c")

	count, err := svc.DeleteBulkByIDs(ctx(), []uuid.UUID{a.ID, b.ID, foreign.ID}, mine)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// The foreign row survives.
	row, err := svc.GetByID(ctx(), foreign.ID, theirs)
	require.NoError(t, err)
	assert.NotNil(t, row)
}

func TestDeleteBulkIsIdempotent(t *testing.T) {
	db := testDB(t)
	_, profileID := seedAccount(t, db, "twice@example.com")
	svc := NewProjectService(db, testLogger(), nil)

	project := seedProject(t, db, profileID, "Once", "once")
	ids := []uuid.UUID{project.ID}

	count, err := svc.DeleteBulkByIDs(ctx(), ids, profileID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = svc.DeleteBulkByIDs(ctx(), ids, profileID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSkillNameConflict(t *testing.T) {
	db := testDB(t)
	svc := NewSkillService(db, testLogger())

	_, err := svc.CreateFromRequest(ctx(), types.CreateSkillRequest{Name: "go", Category: "backend"})
	require.NoError(t, err)

	_, err = svc.CreateFromRequest(ctx(), types.CreateSkillRequest{Name: "go", Category: "other"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUnscopedMissIsNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewSkillService(db, testLogger())

	name := "rename"
	_, err := svc.Update(ctx(), uuid.New(), uuid.Nil, types.UpdateSkillRequest{Name: &name}.Updates())
	assert.ErrorIs(t, err, ErrNotFound)
}
