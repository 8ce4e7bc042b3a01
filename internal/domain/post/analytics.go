package post

import "sort"

// AuthorCount is the number of posts attributed to one author.
type AuthorCount struct {
	UserID int
	Name   string
	Count  int
}

// Stats aggregates the merged post collection for the analytics view.
type Stats struct {
	TotalPosts      int
	DistinctAuthors int
	AvgTitleLen     float64
	AvgBodyLen      float64
	LongestPost     *Post
	TopAuthors      []AuthorCount
	EditedCount     int
	EditedShare     float64
}

// Aggregate computes collection statistics over merged posts. Author names
// come from the users collection, editedIDs marks locally edited posts.
func Aggregate(posts []Post, users []User, editedIDs []int) Stats {
	stats := Stats{TotalPosts: len(posts)}
	if len(posts) == 0 {
		return stats
	}

	names := make(map[int]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	edited := make(map[int]struct{}, len(editedIDs))
	for _, id := range editedIDs {
		edited[id] = struct{}{}
	}

	var titleLen, bodyLen int
	counts := make(map[int]int)
	longest := 0

	for i, p := range posts {
		titleLen += len(p.Title)
		bodyLen += len(p.Body)
		counts[p.UserID]++

		if len(p.Body) >= longest {
			longest = len(p.Body)
			stats.LongestPost = &posts[i]
		}

		if _, ok := edited[p.ID]; ok {
			stats.EditedCount++
		}
	}

	stats.DistinctAuthors = len(counts)
	stats.AvgTitleLen = float64(titleLen) / float64(len(posts))
	stats.AvgBodyLen = float64(bodyLen) / float64(len(posts))
	stats.EditedShare = float64(stats.EditedCount) / float64(len(posts))

	for userID, count := range counts {
		name := names[userID]
		if name == "" {
			name = "unknown"
		}
		stats.TopAuthors = append(stats.TopAuthors, AuthorCount{
			UserID: userID,
			Name:   name,
			Count:  count,
		})
	}
	sort.Slice(stats.TopAuthors, func(i, j int) bool {
		if stats.TopAuthors[i].Count != stats.TopAuthors[j].Count {
			return stats.TopAuthors[i].Count > stats.TopAuthors[j].Count
		}
		return stats.TopAuthors[i].UserID < stats.TopAuthors[j].UserID
	})

	return stats
}
