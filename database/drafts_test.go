package database

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edemy/course"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	return db
}

func TestDraftRoundTrip(t *testing.T) {
	repo := NewDraftRepository(openTestDB(t))

	d := course.NewDraft()
	require.NoError(t, d.SetDetails(course.Details{Title: "Go", Price: 20, Discount: 5}))
	chID := d.AddChapter("Intro").ChapterID
	_, err := d.AddLecture(chID, course.LectureInput{Title: "Hi", Duration: 3, URL: "https://youtu.be/dQw4w9WgXcQ"})
	require.NoError(t, err)

	row, err := repo.Create("edu-1", d)
	require.NoError(t, err)
	assert.Len(t, row.DraftID, 36)
	assert.Equal(t, "Go", row.Title)

	loadedRow, loaded, err := repo.Get("edu-1", row.DraftID)
	require.NoError(t, err)
	assert.Equal(t, row.DraftID, loadedRow.DraftID)
	assert.Equal(t, "Go", loaded.Title)
	require.Len(t, loaded.Chapters, 1)
	assert.Equal(t, chID, loaded.Chapters[0].ChapterID)
	assert.Equal(t, 3, loaded.Chapters[0].ChapterContent[0].LectureDuration)

	loaded.AttachThumbnail("uploads/t.png")
	require.NoError(t, repo.Save(loadedRow, loaded))
	again, _, err := repo.Get("edu-1", row.DraftID)
	require.NoError(t, err)
	assert.Equal(t, "uploads/t.png", again.ThumbnailPath)
}

func TestDraftsAreScopedToEducator(t *testing.T) {
	repo := NewDraftRepository(openTestDB(t))

	row, err := repo.Create("edu-1", course.NewDraft())
	require.NoError(t, err)
	_, err = repo.Create("edu-2", course.NewDraft())
	require.NoError(t, err)

	_, _, err = repo.Get("edu-2", row.DraftID)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	list, err := repo.List("edu-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	assert.ErrorIs(t, repo.Delete("edu-2", row.DraftID), ErrDraftNotFound)
	require.NoError(t, repo.Delete("edu-1", row.DraftID))
	_, _, err = repo.Get("edu-1", row.DraftID)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("oracle", "x")
	assert.Error(t, err)
}
