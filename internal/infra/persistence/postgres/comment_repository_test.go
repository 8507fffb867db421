package postgres

import (
	"context"
	"testing"
	"time"

	"carecorner/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	ts := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO "comments"`).
		WithArgs(int64(5), "Hang in there", int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"timestamp", "id"}).AddRow(ts, int64(11)))

	comment := &entity.Comment{PostID: 5, Content: "Hang in there", AuthorID: 2}
	require.NoError(t, repo.Create(context.Background(), comment))

	assert.Equal(t, int64(11), comment.ID)
	assert.Equal(t, ts, comment.Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListByPost(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	first := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	mock.ExpectQuery(`SELECT \* FROM "comments" WHERE post_id = \$1 ORDER BY timestamp ASC, id ASC`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "content", "timestamp", "author_id"}).
			AddRow(int64(1), int64(5), "first", first, int64(2)).
			AddRow(int64(2), int64(5), "second", second, int64(3)))

	comments, err := repo.ListByPost(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "first", comments[0].Content)
	assert.Equal(t, second, comments[1].Timestamp)
	assert.Empty(t, comments[0].AuthorName)
}
