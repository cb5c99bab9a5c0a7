package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
)

type validator interface{ Validate() error }

// checkBody decodes body into dst and validates it. It returns the field
// names that failed, sorted, or nil when the body is valid.
func checkBody(t *testing.T, body string, dst validator) []string {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(body), dst))

	err := dst.Validate()
	if err == nil {
		return nil
	}
	require.ErrorIs(t, err, domain.ErrValidation)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	details := validationFieldsToDetails(verr.Fields)
	out := make([]string, len(details))
	for i, d := range details {
		out[i] = d.Location[len("body."):]
	}
	return out
}

func TestCreateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body string
		want []string
	}{
		"minimal":               {`{"title":"t","description":"d"}`, nil},
		"full":                  {`{"title":"t","description":"d","status":"done","category":"other","progress_percent":100,"project_id":"p-1"}`, nil},
		"empty object":          {`{}`, []string{"description", "title"}},
		"whitespace title":      {`{"title":"   ","description":"d"}`, []string{"title"}},
		"unknown status":        {`{"title":"t","description":"d","status":"archived"}`, []string{"status"}},
		"unknown category":      {`{"title":"t","description":"d","category":"hobby"}`, []string{"category"}},
		"negative progress":     {`{"title":"t","description":"d","progress_percent":-5}`, []string{"progress_percent"}},
		"progress over 100":     {`{"title":"t","description":"d","progress_percent":101}`, []string{"progress_percent"}},
		"empty project":         {`{"title":"t","description":"d","project_id":""}`, []string{"project_id"}},
		"null project is unset": {`{"title":"t","description":"d","project_id":null}`, nil},
		"everything wrong": {
			`{"status":"x","category":"y","progress_percent":-1,"project_id":""}`,
			[]string{"category", "description", "progress_percent", "project_id", "status", "title"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, checkBody(t, tt.body, &CreateTodoRequest{}))
		})
	}
}

func TestUpdateTodoRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body string
		want []string
	}{
		"empty patch":        {`{}`, nil},
		"status only":        {`{"status":"in_progress"}`, nil},
		"move project":       {`{"project_id":"p-2"}`, nil},
		"blank title":        {`{"title":""}`, []string{"title"}},
		"blank description":  {`{"description":" "}`, []string{"description"}},
		"bad status":         {`{"status":"later"}`, []string{"status"}},
		"bad category":       {`{"category":"misc"}`, []string{"category"}},
		"progress too large": {`{"progress_percent":150}`, []string{"progress_percent"}},
		"empty project":      {`{"project_id":""}`, []string{"project_id"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, checkBody(t, tt.body, &UpdateTodoRequest{}))
		})
	}
}

func TestProjectRequests_Validate(t *testing.T) {
	t.Parallel()

	assert.Nil(t, checkBody(t, `{"name":"Docs","description":"Docs site"}`, &CreateProjectRequest{}))
	assert.Equal(t, []string{"description", "name"}, checkBody(t, `{"name":" "}`, &CreateProjectRequest{}))
	assert.Nil(t, checkBody(t, `{}`, &UpdateProjectRequest{}))
	assert.Equal(t, []string{"name"}, checkBody(t, `{"name":""}`, &UpdateProjectRequest{}))
}

func TestBulkUpdateTodosRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		body string
		want []string
	}{
		"one item":            {`{"updates":[{"todo_id":"1"}]}`, nil},
		"missing updates":     {`{}`, []string{"updates"}},
		"empty updates":       {`{"updates":[]}`, []string{"updates"}},
		"items without an id": {`{"updates":[{"todo_id":"1"},{},{"title":"x"}]}`, []string{"updates[1].todo_id", "updates[2].todo_id"}},

		// Item contents are checked per item by the service.
		"invalid item content": {`{"updates":[{"todo_id":"1","status":"bogus","progress_percent":900}]}`, nil},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, checkBody(t, tt.body, &BulkUpdateTodosRequest{}))
		})
	}
}

func TestCreateTodoRequest_ToTodo(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		got := (&CreateTodoRequest{Title: "t", Description: "d"}).ToTodo()

		assert.Equal(t, todo.StatusPending, got.Status)
		assert.Equal(t, todo.CategoryPersonal, got.Category)
		assert.Nil(t, got.ProjectID)
		assert.True(t, got.ID.IsZero())
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Parallel()
		pid := "p-4"
		got := (&CreateTodoRequest{
			Title: "t", Description: "d", Status: "in_progress", Category: "work", ProgressPercent: 30, ProjectID: &pid,
		}).ToTodo()

		assert.Equal(t, todo.StatusInProgress, got.Status)
		assert.Equal(t, todo.CategoryWork, got.Category)
		assert.Equal(t, 30, got.ProgressPercent)
		assert.True(t, got.BelongsTo(domain.NewProjectID("p-4")))
	})
}

func TestUpdateTodoRequest_ApplyTo(t *testing.T) {
	t.Parallel()

	p1 := domain.NewProjectID("p-1")
	current := &todo.Todo{
		ID:          domain.NewTodoID("7"),
		Title:       "Write changelog",
		Description: "Summarize merged changes",
		Status:      todo.StatusPending,
		Category:    todo.CategoryWork,
		ProjectID:   &p1,
	}

	var req UpdateTodoRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"done","progress_percent":100,"project_id":"p-2"}`), &req))
	got := req.ApplyTo(current)

	assert.Equal(t, todo.StatusDone, got.Status)
	assert.Equal(t, 100, got.ProgressPercent)
	assert.True(t, got.BelongsTo(domain.NewProjectID("p-2")))
	assert.Equal(t, current.Title, got.Title)
	assert.Equal(t, current.ID, got.ID)

	assert.Equal(t, todo.StatusPending, current.Status, "current is not modified")
	assert.True(t, current.BelongsTo(p1))
}

func TestUpdateProjectRequest_ApplyTo(t *testing.T) {
	t.Parallel()

	current := &project.Project{
		ID:          domain.NewProjectID("p-1"),
		Name:        "Docs",
		Description: "Docs site",
		Todos:       []todo.Todo{{Title: "x"}},
	}
	name := "Docs v2"
	got := (&UpdateProjectRequest{Name: &name}).ApplyTo(current)

	assert.Equal(t, "Docs v2", got.Name)
	assert.Equal(t, "Docs site", got.Description)
	assert.Equal(t, current.ID, got.ID)
	assert.Empty(t, got.Todos)
	assert.Equal(t, "Docs", current.Name)
}

func TestBulkTodoUpdate_ToTodo(t *testing.T) {
	t.Parallel()

	got := (&BulkTodoUpdate{TodoID: "t-9", Title: "T", Description: "D", Status: "done", Category: "other", ProgressPercent: 100}).ToTodo()

	assert.Equal(t, &todo.Todo{
		ID:              domain.NewTodoID("t-9"),
		Title:           "T",
		Description:     "D",
		Status:          todo.StatusDone,
		Category:        todo.CategoryOther,
		ProgressPercent: 100,
	}, got)
}
