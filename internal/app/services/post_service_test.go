package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/rdityas/weblog-core/internal/infrastructures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostService(t *testing.T) (*PostService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newMockDB(t)
	return NewPostService(db, infrastructures.NewValidator()), mock
}

func TestPostIsOwner(t *testing.T) {
	postService, _ := newTestPostService(t)

	post := &models.Post{ID: 1, UserID: 7}

	assert.True(t, postService.IsOwner(7, post))
	assert.False(t, postService.IsOwner(8, post))
	assert.False(t, postService.IsOwner(7, nil))
}

func TestFindManyPostsFilterByUser(t *testing.T) {
	postService, mock := newTestPostService(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" WHERE posts\.user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "posts" WHERE posts\.user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "details", "user_id"}))

	result, err := postService.FindManyPosts(models.PageRequest{PageNumber: 1, PageSize: 10}, models.PostListFilter{UserID: 7})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.TotalCount)
	assert.Empty(t, result.Data)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindManyPostsFilterByCategoryJoinsOnCount(t *testing.T) {
	postService, mock := newTestPostService(t)

	// The category join must constrain the count as well as the fetch
	mock.ExpectQuery(`SELECT count\(\*\) FROM "posts" JOIN post_categories ON post_categories\.post_id = posts\.id WHERE post_categories\.category_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "posts" JOIN post_categories ON post_categories\.post_id = posts\.id WHERE post_categories\.category_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "details", "user_id"}))

	_, err := postService.FindManyPosts(models.PageRequest{PageNumber: 1, PageSize: 10}, models.PostListFilter{CategoryID: 2})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
