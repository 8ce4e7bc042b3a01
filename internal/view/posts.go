package view

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/fatih/color"

	"postdeck/internal/domain/post"
)

const maxTitleWidth = 48

// PostsView lists the merged collection, optionally filtered to one author
// via the userId param. Recreated on every navigation.
type PostsView struct {
	deps     Deps
	disposed bool
}

func NewPostsView(deps Deps) *PostsView {
	return &PostsView{deps: deps}
}

func (v *PostsView) Init(params map[string]string) error {
	ctx, cancel := context.WithTimeout(context.Background(), v.deps.timeout())
	defer cancel()

	var (
		posts []post.Post
		err   error
	)
	if raw := params["userId"]; raw != "" {
		userID, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return fmt.Errorf("bad userId param %q: %w", raw, convErr)
		}
		posts, err = v.deps.Client.MergedPostsByUser(ctx, userID)
	} else {
		posts, err = v.deps.Client.MergedPosts(ctx)
	}
	if err != nil {
		color.New(color.FgRed).Fprintf(v.deps.Out, "failed to load posts: %v\n", err)
		return err
	}

	if v.disposed {
		// Navigated away while loading, the result has nowhere to go.
		return nil
	}

	v.render(posts)
	return nil
}

func (v *PostsView) render(posts []post.Post) {
	header := color.New(color.FgCyan, color.Bold)
	header.Fprintf(v.deps.Out, "=== Posts (%d) ===\n", len(posts))

	w := tabwriter.NewWriter(v.deps.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tAUTHOR\tTITLE\t")

	edited := color.New(color.FgYellow).SprintFunc()
	for _, p := range posts {
		title := p.Title
		if len(title) > maxTitleWidth {
			title = title[:maxTitleWidth-3] + "..."
		}
		if post.IsEdited(v.deps.Store, p.ID) {
			title = edited(title + " *")
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t\n", p.ID, p.UserID, title)
	}
	w.Flush()

	fmt.Fprintln(v.deps.Out, "Use: go detail?id=<id> to open a post")
}

func (v *PostsView) Dispose() {
	v.disposed = true
}
