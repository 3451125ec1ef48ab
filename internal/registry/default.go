package registry

// Default returns the registry of the productivity API. Only free-text
// user content is listed; identifiers, timestamps, enums and foreign keys
// stay readable so the server can filter and sort on them.
func Default() *Registry {
	return MustNew(
		// key material and public content
		FieldEncryptionConfig{Pattern: "/api/auth/*", Skip: true},
		FieldEncryptionConfig{Pattern: "/api/keys/*", Skip: true},
		FieldEncryptionConfig{Pattern: "/api/recovery-key", Skip: true},
		FieldEncryptionConfig{Pattern: "/api/templates", Skip: true},
		FieldEncryptionConfig{Pattern: "/api/templates/:id", Skip: true},
		FieldEncryptionConfig{Pattern: "/api/mindset/*", Skip: true},

		// sprints
		FieldEncryptionConfig{Pattern: "/api/sprints", Fields: []string{"title", "goal", "reflection"}},
		FieldEncryptionConfig{Pattern: "/api/sprints/:sprintId", Fields: []string{"title", "goal", "reflection"}},
		FieldEncryptionConfig{
			Pattern: "/api/sprints/:sprintId/overview",
			Fields: []string{
				"sprint.title", "sprint.goal",
				"tasks[].title", "tasks[].description", "tasks[].comments[].body",
			},
		},
		FieldEncryptionConfig{Pattern: "/api/sprints/:sprintId/tasks", Fields: []string{"title", "description", "notes"}},

		// tasks and comments
		FieldEncryptionConfig{Pattern: "/api/tasks", Fields: []string{"title", "description", "notes"}},
		FieldEncryptionConfig{Pattern: "/api/tasks/:taskId", Fields: []string{"title", "description", "notes", "checklist[].text"}},
		FieldEncryptionConfig{Pattern: "/api/tasks/:taskId/comments", Fields: []string{"body"}},
		FieldEncryptionConfig{Pattern: "/api/comments/:commentId", Fields: []string{"body"}},

		// coaching chat
		FieldEncryptionConfig{Pattern: "/api/chat/conversations", Fields: []string{"title"}},
		FieldEncryptionConfig{Pattern: "/api/chat/conversations/:conversationId", Fields: []string{"title", "messages[].content"}},
		FieldEncryptionConfig{Pattern: "/api/chat/conversations/:conversationId/messages", Fields: []string{"content"}},
		FieldEncryptionConfig{Pattern: "/api/chat/drafts/:draftId", Fields: []string{"content"}},

		// journal
		FieldEncryptionConfig{Pattern: "/api/journal", Fields: []string{"title", "content"}},
		FieldEncryptionConfig{Pattern: "/api/journal/:entryId", Fields: []string{"title", "content"}},
	)
}
