package acl

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/go-task-service/internal/adapters/clients/acl/project"
	acltodo "github.com/jsamuelsen11/go-task-service/internal/adapters/clients/acl/todo"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/id"
	domproject "github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-task-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoClient    = (*TodoClient)(nil)
	_ ports.HealthChecker = (*TodoClient)(nil)
)

const (
	todosPath  = "/api/v1/todos"
	groupsPath = "/api/v1/groups"
)

// TodoClient is the outbound adapter for the downstream TODO API. It
// implements [ports.TodoClient] for todos and projects.
//
// All methods translate between our domain types and the downstream API's
// representations via the ACL translators in sub-packages [acltodo] and
// [project]. HTTP errors are mapped to domain errors by [TranslateHTTPError].
//
// Our identifiers are opaque strings; the downstream only issues base-10
// integers. An identifier that cannot be a downstream ID is reported as
// a *domain.NotFoundError without a network call.
type TodoClient struct {
	req    *requester
	name   string
	logger *slog.Logger
}

// NewTodoClient creates a TodoClient that sends requests through the given
// [httpclient.Client]. The client's BaseURL should point to the downstream
// TODO API root (e.g. "https://todo-api.example.com").
func NewTodoClient(client *httpclient.Client, logger *slog.Logger) *TodoClient {
	return &TodoClient{
		req:    newRequester(client, logger),
		name:   client.Name(),
		logger: logger,
	}
}

// --- Todo operations ---

// ListTodos fetches todos from GET /api/v1/todos, optionally filtered by
// status, category, and project (mapped to group_id). A project filter
// that cannot name a downstream group matches nothing.
func (c *TodoClient) ListTodos(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	if filter.ProjectID != nil && !isDownstreamID(*filter.ProjectID) {
		return []todo.Todo{}, nil
	}

	var dto acltodo.TodoListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, todosPath+filterQuery(filter), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return acltodo.ToDomainTodoList(dto), nil
}

// GetTodo fetches a single todo by ID from GET /api/v1/todos/{id}.
func (c *TodoClient) GetTodo(ctx context.Context, todoID domain.TodoID) (*todo.Todo, error) {
	path, err := todoPath(todoID)
	if err != nil {
		return nil, err
	}

	var dto acltodo.TodoDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, notFoundAs(err, domain.KindTodo, todoID)
	}
	result := acltodo.ToDomainTodo(&dto)
	return &result, nil
}

// CreateTodo sends a POST /api/v1/todos with the translated request body
// and returns the created todo. A ProjectID that cannot name a downstream
// group is reported as a missing project.
func (c *TodoClient) CreateTodo(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	if t.ProjectID != nil && !isDownstreamID(*t.ProjectID) {
		return nil, domain.NewNotFoundError(domain.KindProject, *t.ProjectID)
	}

	var respDTO acltodo.TodoDTO
	if err := c.req.Do(ctx, http.MethodPost, todosPath, http.StatusCreated, acltodo.ToCreateTodoRequest(t), &respDTO); err != nil {
		return nil, err
	}
	result := acltodo.ToDomainTodo(&respDTO)
	return &result, nil
}

// UpdateTodo sends a PUT /api/v1/todos/{id} with the translated request
// body and returns the updated todo.
func (c *TodoClient) UpdateTodo(ctx context.Context, todoID domain.TodoID, t *todo.Todo) (*todo.Todo, error) {
	path, err := todoPath(todoID)
	if err != nil {
		return nil, err
	}
	if t.ProjectID != nil && !isDownstreamID(*t.ProjectID) {
		return nil, domain.NewNotFoundError(domain.KindProject, *t.ProjectID)
	}

	var respDTO acltodo.TodoDTO
	if err := c.req.Do(ctx, http.MethodPut, path, http.StatusOK, acltodo.ToUpdateTodoRequest(t), &respDTO); err != nil {
		return nil, notFoundAs(err, domain.KindTodo, todoID)
	}
	result := acltodo.ToDomainTodo(&respDTO)
	return &result, nil
}

// DeleteTodo sends a DELETE /api/v1/todos/{id}.
func (c *TodoClient) DeleteTodo(ctx context.Context, todoID domain.TodoID) error {
	path, err := todoPath(todoID)
	if err != nil {
		return err
	}
	if err := c.req.Do(ctx, http.MethodDelete, path, http.StatusNoContent, nil, nil); err != nil {
		return notFoundAs(err, domain.KindTodo, todoID)
	}
	return nil
}

// --- Project operations (downstream "groups") ---

// ListProjects fetches all projects from GET /api/v1/groups. Projects are
// returned without their todos populated.
func (c *TodoClient) ListProjects(ctx context.Context) ([]domproject.Project, error) {
	var dto project.GroupListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, groupsPath, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return project.ToDomainProjectList(dto), nil
}

// GetProject fetches a single project by ID from GET /api/v1/groups/{id}.
func (c *TodoClient) GetProject(ctx context.Context, projectID domain.ProjectID) (*domproject.Project, error) {
	path, err := groupPath(projectID)
	if err != nil {
		return nil, err
	}

	var dto project.GroupDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, notFoundAs(err, domain.KindProject, projectID)
	}
	result := project.ToDomainProject(dto)
	return &result, nil
}

// CreateProject sends a POST /api/v1/groups with the translated request
// body and returns the created project.
func (c *TodoClient) CreateProject(ctx context.Context, p *domproject.Project) (*domproject.Project, error) {
	var respDTO project.GroupDTO
	if err := c.req.Do(ctx, http.MethodPost, groupsPath, http.StatusCreated, project.ToCreateGroupRequest(p), &respDTO); err != nil {
		return nil, err
	}
	result := project.ToDomainProject(respDTO)
	return &result, nil
}

// UpdateProject sends a PUT /api/v1/groups/{id} with the translated request
// body and returns the updated project.
func (c *TodoClient) UpdateProject(ctx context.Context, projectID domain.ProjectID, p *domproject.Project) (*domproject.Project, error) {
	path, err := groupPath(projectID)
	if err != nil {
		return nil, err
	}

	var respDTO project.GroupDTO
	if err := c.req.Do(ctx, http.MethodPut, path, http.StatusOK, project.ToUpdateGroupRequest(p), &respDTO); err != nil {
		return nil, notFoundAs(err, domain.KindProject, projectID)
	}
	result := project.ToDomainProject(respDTO)
	return &result, nil
}

// DeleteProject sends a DELETE /api/v1/groups/{id}. Todos belonging to the
// project become ungrouped.
func (c *TodoClient) DeleteProject(ctx context.Context, projectID domain.ProjectID) error {
	path, err := groupPath(projectID)
	if err != nil {
		return err
	}
	if err := c.req.Do(ctx, http.MethodDelete, path, http.StatusNoContent, nil, nil); err != nil {
		return notFoundAs(err, domain.KindProject, projectID)
	}
	return nil
}

// GetProjectTodos fetches todos belonging to a specific project from
// GET /api/v1/groups/{id}/todos. The filter's ProjectID field is ignored
// because the project is identified by the URL path.
func (c *TodoClient) GetProjectTodos(ctx context.Context, projectID domain.ProjectID, filter todo.Filter) ([]todo.Todo, error) {
	path, err := groupPath(projectID)
	if err != nil {
		return nil, err
	}
	filter.ProjectID = nil

	var dto acltodo.TodoListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path+"/todos"+filterQuery(filter), http.StatusOK, nil, &dto); err != nil {
		return nil, notFoundAs(err, domain.KindProject, projectID)
	}
	return acltodo.ToDomainTodoList(dto), nil
}

// isDownstreamID reports whether v is a downstream identifier in the
// canonical base-10 form the downstream issues. "+5", "05" and "-0" are not:
// they would either fail to encode as JSON numbers or alias another ID.
func isDownstreamID[Owner any](v id.ID[Owner]) bool {
	s := v.String()
	n, err := strconv.ParseInt(s, 10, 64)
	return err == nil && strconv.FormatInt(n, 10) == s
}

func todoPath(todoID domain.TodoID) (string, error) {
	if !isDownstreamID(todoID) {
		return "", domain.NewNotFoundError(domain.KindTodo, todoID)
	}
	return todosPath + "/" + url.PathEscape(todoID.String()), nil
}

func groupPath(projectID domain.ProjectID) (string, error) {
	if !isDownstreamID(projectID) {
		return "", domain.NewNotFoundError(domain.KindProject, projectID)
	}
	groupID := project.ToGroupID(projectID)
	return groupsPath + "/" + url.PathEscape(groupID.String()), nil
}

// notFoundAs replaces a bare domain.ErrNotFound from the downstream with a
// *domain.NotFoundError naming the entity. Other errors pass through.
func notFoundAs[Owner any](err error, kind string, v id.ID[Owner]) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError(kind, v)
	}
	return err
}

// filterQuery converts a [todo.Filter] to a URL query string (including
// the leading "?"). Returns an empty string if no filters are set.
func filterQuery(f todo.Filter) string {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status.String())
	}
	if f.Category != "" {
		v.Set("category", f.Category.String())
	}
	if f.ProjectID != nil {
		v.Set("group_id", project.ToGroupID(*f.ProjectID).String())
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
