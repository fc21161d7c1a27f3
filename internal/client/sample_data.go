package client

import "github.com/quickblog/internal/service"

// SamplePosts 返回内置的演示文章，供读路径降级时由调用方替换展示。
// The slice is rebuilt on every call so callers can mutate it freely.
func SamplePosts() []service.Post {
	return []service.Post{
		{
			ID:        "sample-3",
			Title:     "Deploying QuickBlog",
			Content:   "## Deployment\n\nPoint `BACKEND_BASE_URL` at a running post service, or set `DATABASE_PATH` to use the relational variant. With neither configured you are reading this sample data right now.",
			Author:    "QuickBlog Team",
			Tags:      []string{"deployment", "guide"},
			CreatedAt: "2024-03-03T09:00:00.000Z",
			UpdatedAt: "2024-03-03T09:00:00.000Z",
		},
		{
			ID:        "sample-2",
			Title:     "Writing Posts in Markdown",
			Content:   "Posts are plain **markdown**. Headings, lists, and links all work:\n\n- lists\n- [links](https://example.com)\n- `inline code`\n\nThe excerpt on the index page is derived automatically from the first 150 characters.",
			Author:    "QuickBlog Team",
			Tags:      []string{"markdown", "writing"},
			CreatedAt: "2024-02-02T12:30:00.000Z",
			UpdatedAt: "2024-02-02T12:30:00.000Z",
		},
		{
			ID:        "sample-1",
			Title:     "Welcome to QuickBlog",
			Content:   "This is a collaborative blog: anyone can write, everyone can read. Create your first post with the button above. Posts need a title, some content, and your name.",
			Author:    "QuickBlog Team",
			Tags:      []string{"welcome"},
			CreatedAt: "2024-01-01T10:00:00.000Z",
			UpdatedAt: "2024-01-01T10:00:00.000Z",
		},
	}
}
