package repository

import (
	"testing"
	"time"

	"contentiq-backend/internal/content/domain"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Analysis{}, &domain.QueryLog{}))
	return db
}

func TestFindByURLAbsent(t *testing.T) {
	repo := NewAnalysisRepository(openTestDB(t))

	analysis, err := repo.FindByURL("https://a.example/post")
	require.NoError(t, err)
	assert.Nil(t, analysis)
}

func TestCreateAndFindByURL(t *testing.T) {
	repo := NewAnalysisRepository(openTestDB(t))

	created := &domain.Analysis{
		URL:           "https://a.example/post",
		Title:         "T",
		ExtractedText: "X",
		Summary:       "S",
		Category:      "C",
	}
	require.NoError(t, repo.Create(created))
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindByURL("https://a.example/post")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "T", found.Title)
	assert.Equal(t, "X", found.ExtractedText)
	assert.Equal(t, "S", found.Summary)
	assert.Equal(t, "C", found.Category)
}

func TestCreateDuplicateURL(t *testing.T) {
	repo := NewAnalysisRepository(openTestDB(t))

	require.NoError(t, repo.Create(&domain.Analysis{URL: "https://a.example/post"}))

	err := repo.Create(&domain.Analysis{URL: "https://a.example/post", Title: "other"})
	assert.ErrorIs(t, err, ErrDuplicateURL)

	// The loser's insert must not have clobbered the winner
	analyses, err := repo.ListRecent(10)
	require.NoError(t, err)
	assert.Len(t, analyses, 1)
}

func TestListRecentOrderAndCap(t *testing.T) {
	repo := NewAnalysisRepository(openTestDB(t))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	urls := []string{"https://a.example/1", "https://a.example/2", "https://a.example/3"}
	for i, url := range urls {
		require.NoError(t, repo.Create(&domain.Analysis{
			URL:       url,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	analyses, err := repo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, analyses, 2)
	assert.Equal(t, "https://a.example/3", analyses[0].URL)
	assert.Equal(t, "https://a.example/2", analyses[1].URL)
}

func TestAppendQueryLog(t *testing.T) {
	repo := NewQueryLogRepository(openTestDB(t))

	payload := datatypes.JSON(`{"articles":[],"youtube":[{"url":"u","title":"t"}]}`)
	entry := &domain.QueryLog{URL: "https://b.example/video", Recommendations: payload}
	require.NoError(t, repo.Append(entry))
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())

	entries, err := repo.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://b.example/video", entries[0].URL)
	assert.JSONEq(t, string(payload), string(entries[0].Recommendations))
}

func TestAppendSameURLTwice(t *testing.T) {
	// History has no uniqueness constraint: the same URL may be queried
	// many times and every query is logged.
	repo := NewQueryLogRepository(openTestDB(t))

	require.NoError(t, repo.Append(&domain.QueryLog{URL: "https://b.example/video"}))
	require.NoError(t, repo.Append(&domain.QueryLog{URL: "https://b.example/video"}))

	entries, err := repo.ListRecent(10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestQueryLogListRecentOrderAndCap(t *testing.T) {
	repo := NewQueryLogRepository(openTestDB(t))

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(&domain.QueryLog{
			URL:       "https://b.example/video",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := repo.ListRecent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Timestamp.After(entries[1].Timestamp))
	assert.WithinDuration(t, base.Add(2*time.Minute), entries[0].Timestamp, time.Second)
}
