package view

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"

	"postdeck/internal/domain/post"
)

// AnalyticsView renders aggregate statistics over the merged collection.
// Like the login slot it is kept as a lazy singleton across navigations.
type AnalyticsView struct {
	deps Deps
}

func NewAnalyticsView(deps Deps) *AnalyticsView {
	return &AnalyticsView{deps: deps}
}

func (v *AnalyticsView) Init(_ map[string]string) error {
	ctx, cancel := context.WithTimeout(context.Background(), v.deps.timeout())
	defer cancel()

	posts, err := v.deps.Client.MergedPosts(ctx)
	if err != nil {
		color.New(color.FgRed).Fprintf(v.deps.Out, "failed to load posts: %v\n", err)
		return err
	}

	// Author names are nice to have, the stats work without them.
	users, err := v.deps.Client.FetchUsers(ctx)
	if err != nil {
		v.deps.Log.Warn("users unavailable, rendering stats without names", "error", err)
		users = nil
	}

	stats := post.Aggregate(posts, users, post.EditedIDs(v.deps.Store))
	v.render(stats)
	return nil
}

func (v *AnalyticsView) render(stats post.Stats) {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintln(v.deps.Out, "=== Analytics ===")

	fmt.Fprintf(v.deps.Out, "Posts:            %d\n", stats.TotalPosts)
	fmt.Fprintf(v.deps.Out, "Authors:          %d\n", stats.DistinctAuthors)
	fmt.Fprintf(v.deps.Out, "Avg title length: %.1f\n", stats.AvgTitleLen)
	fmt.Fprintf(v.deps.Out, "Avg body length:  %.1f\n", stats.AvgBodyLen)
	fmt.Fprintf(v.deps.Out, "Locally edited:   %d (%.0f%%)\n", stats.EditedCount, stats.EditedShare*100)

	if stats.LongestPost != nil {
		fmt.Fprintf(v.deps.Out, "Longest post:     #%d %q\n", stats.LongestPost.ID, stats.LongestPost.Title)
	}

	if len(stats.TopAuthors) > 0 {
		fmt.Fprintln(v.deps.Out)
		header.Fprintln(v.deps.Out, "Posts per author")
		w := tabwriter.NewWriter(v.deps.Out, 0, 4, 2, ' ', 0)
		for _, author := range stats.TopAuthors {
			fmt.Fprintf(w, "%s\t%d\t\n", author.Name, author.Count)
		}
		w.Flush()
	}
}

func (v *AnalyticsView) Dispose() {}
