package mcp

import "github.com/mark3labs/mcp-go/mcp"

var addToolDef = mcp.NewTool("paragraph_add",
	mcp.WithDescription("Add a new journal paragraph. Word and character counts and the category label are computed server-side."),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("Paragraph title"),
	),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("Paragraph body text (markdown allowed)"),
	),
	mcp.WithArray("tags",
		mcp.Description("Optional tags; lowercased and de-duplicated"),
		mcp.Items(map[string]any{"type": "string"}),
	),
)

var getToolDef = mcp.NewTool("paragraph_get",
	mcp.WithDescription("Fetch a single paragraph by its ID."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Paragraph ULID"),
	),
)

var listToolDef = mcp.NewTool("paragraph_list",
	mcp.WithDescription("List paragraphs newest first, optionally filtered by a text query or category label."),
	mcp.WithString("q",
		mcp.Description("Substring filter matched against title and content"),
	),
	mcp.WithString("category",
		mcp.Description("Exact category label filter, e.g. Technology"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results (default: all)"),
	),
)

var recentToolDef = mcp.NewTool("paragraph_recent",
	mcp.WithDescription("Fetch the three most recent paragraphs, newest first."),
)

var updateToolDef = mcp.NewTool("paragraph_update",
	mcp.WithDescription("Replace a paragraph's title, content, and tags. All fields are required; metrics are recomputed."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Paragraph ULID"),
	),
	mcp.WithString("title",
		mcp.Required(),
		mcp.Description("New title"),
	),
	mcp.WithString("content",
		mcp.Required(),
		mcp.Description("New body text"),
	),
	mcp.WithArray("tags",
		mcp.Required(),
		mcp.Description("Full replacement tag list; pass [] to clear"),
		mcp.Items(map[string]any{"type": "string"}),
	),
)

var deleteToolDef = mcp.NewTool("paragraph_delete",
	mcp.WithDescription("Permanently delete a paragraph. There is no undo."),
	mcp.WithString("id",
		mcp.Required(),
		mcp.Description("Paragraph ULID"),
	),
)

var statsToolDef = mcp.NewTool("paragraph_stats",
	mcp.WithDescription("Journal-wide totals: paragraph count, word count, character count, and per-category counts."),
)
