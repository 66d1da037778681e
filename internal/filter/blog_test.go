package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datban/datban-cli/internal/domain"
	"github.com/datban/datban-cli/internal/filter"
)

func TestMostViewedDefaultsToSix(t *testing.T) {
	views := []int{15234, 12345, 9876, 18765, 14567, 8765, 11234, 9876, 7654, 13456}
	posts := make([]domain.BlogPost, 0, len(views))
	for i, count := range views {
		posts = append(posts, domain.BlogPost{ID: string(rune('a' + i)), Views: count})
	}

	got := filter.MostViewed(posts, 0)
	require.Len(t, got, 6)
	gotViews := make([]int, 0, len(got))
	for _, post := range got {
		gotViews = append(gotViews, post.Views)
	}
	assert.Equal(t, []int{18765, 15234, 14567, 13456, 12345, 11234}, gotViews)
}

func TestMostViewedDoesNotMutateInput(t *testing.T) {
	posts := []domain.BlogPost{{ID: "1", Views: 1}, {ID: "2", Views: 2}}
	_ = filter.MostViewed(posts, 1)
	assert.Equal(t, "1", posts[0].ID)
}

func TestLatestPrefersPublishedAt(t *testing.T) {
	posts := []domain.BlogPost{
		{ID: "1", CreatedAt: "2025-05-01T00:00:00Z"},
		{ID: "2", PublishedAt: "2025-06-01T00:00:00Z", CreatedAt: "2025-01-01T00:00:00Z"},
		{ID: "3", PublishedAt: "2025-03-01T00:00:00Z"},
	}
	got := filter.Latest(posts, 0)
	require.Len(t, got, 3)
	assert.Equal(t, "2", got[0].ID, "publishedAt wins over createdAt")
	assert.Equal(t, "1", got[1].ID)
	assert.Equal(t, "3", got[2].ID)
}

func TestPostsForCityKeepsUntaggedPosts(t *testing.T) {
	posts := []domain.BlogPost{
		{ID: "1"},
		{ID: "2", City: &domain.City{Name: "Hà Nội"}},
		{ID: "3", City: &domain.City{Name: "Đà Nẵng"}},
		{ID: "4", CityID: "Hà Nội"},
	}
	got := filter.PostsForCity(posts, "Hà Nội")
	require.Len(t, got, 3)
	assert.Equal(t, "1", got[0].ID, "posts without a city stay in every city view")
	assert.Equal(t, "2", got[1].ID)
	assert.Equal(t, "4", got[2].ID)

	assert.Equal(t, posts, filter.PostsForCity(posts, ""))
}

func TestPostsForCategory(t *testing.T) {
	posts := []domain.BlogPost{
		{ID: "1", Category: &domain.BlogCategory{ID: "food"}},
		{ID: "2"},
		{ID: "3", Category: &domain.BlogCategory{ID: "travel"}},
	}
	got := filter.PostsForCategory(posts, "food")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}
