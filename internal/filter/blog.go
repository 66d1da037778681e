package filter

import (
	"sort"

	"github.com/datban/datban-cli/internal/domain"
)

const (
	defaultMostViewedLimit = 6
	defaultLatestLimit     = 12
)

// MostViewed returns the posts with the highest view counts in descending
// order, truncated to limit (6 when limit is not positive).
func MostViewed(posts []domain.BlogPost, limit int) []domain.BlogPost {
	if limit <= 0 {
		limit = defaultMostViewedLimit
	}
	sorted := make([]domain.BlogPost, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Views > sorted[j].Views
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// Latest returns the newest posts by publish timestamp (createdAt when the
// post was never explicitly published), truncated to limit (12 when limit is
// not positive). Timestamps are RFC 3339 strings, so lexical order is
// chronological order.
func Latest(posts []domain.BlogPost, limit int) []domain.BlogPost {
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	sorted := make([]domain.BlogPost, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].FormatPublished() > sorted[j].FormatPublished()
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// PostsForCity keeps posts that either carry no city or belong to the named
// city. The blog page refines by city client-side.
func PostsForCity(posts []domain.BlogPost, city string) []domain.BlogPost {
	if city == "" {
		return posts
	}
	filtered := make([]domain.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.City == nil || post.City.Name == city || post.CityID == city {
			filtered = append(filtered, post)
		}
	}
	return filtered
}

// PostsForCategory keeps posts in the selected category.
func PostsForCategory(posts []domain.BlogPost, categoryID string) []domain.BlogPost {
	if categoryID == "" {
		return posts
	}
	filtered := make([]domain.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.Category != nil && post.Category.ID == categoryID {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
