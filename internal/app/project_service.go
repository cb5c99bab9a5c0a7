// Package app holds the use cases. Services validate input, enforce project
// ownership of todos and coordinate multi-step writes over ports.TodoClient.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	appctx "github.com/jsamuelsen11/go-task-service/internal/app/context"
	"github.com/jsamuelsen11/go-task-service/internal/app/fanout"
	"github.com/jsamuelsen11/go-task-service/internal/domain"
	"github.com/jsamuelsen11/go-task-service/internal/domain/project"
	"github.com/jsamuelsen11/go-task-service/internal/domain/todo"
	"github.com/jsamuelsen11/go-task-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-task-service/internal/ports"
)

var _ ports.ProjectService = (*ProjectService)(nil)

// Bulk limits applied when BulkLimits leaves a field unset.
const (
	DefaultBulkMaxWorkers = 4
	DefaultBulkMaxItems   = 100
)

// BulkLimits bounds BulkUpdateTodos: MaxWorkers downstream calls in flight
// and MaxItems per batch.
type BulkLimits struct {
	MaxWorkers int
	MaxItems   int
}

func (l BulkLimits) withDefaults() BulkLimits {
	if l.MaxWorkers <= 0 {
		l.MaxWorkers = DefaultBulkMaxWorkers
	}
	if l.MaxItems <= 0 {
		l.MaxItems = DefaultBulkMaxItems
	}
	return l
}

// ProjectService serves projects and the todos reached through them. Reads
// are memoized in the request context when one is present.
type ProjectService struct {
	todoClient ports.TodoClient
	limits     BulkLimits
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// NewProjectService creates a ProjectService. A nil logger discards output.
func NewProjectService(client ports.TodoClient, limits BulkLimits, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{todoClient: client, limits: limits.withDefaults(), logger: logger}
}

// WithMetrics turns on bulk item counting. Nil leaves it off.
func (s *ProjectService) WithMetrics(metrics *telemetry.Metrics) *ProjectService {
	s.metrics = metrics
	return s
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]project.Project, error) {
	s.logger.InfoContext(ctx, "listing projects")
	projects, err := s.todoClient.ListProjects(ctx)
	if err != nil {
		return nil, logged(ctx, s.logger, "ListProjects", err)
	}
	return projects, nil
}

// GetProject returns a copy of the project with Todos filled in.
func (s *ProjectService) GetProject(ctx context.Context, id domain.ProjectID) (*project.Project, error) {
	s.logger.InfoContext(ctx, "fetching project", slog.Any("id", id))

	p, err := s.project(ctx, id)
	if err != nil {
		return nil, logged(ctx, s.logger, "GetProject", err, slog.Any("id", id))
	}
	todos, err := s.projectTodos(ctx, id)
	if err != nil {
		return nil, logged(ctx, s.logger, "GetProject", err, slog.Any("id", id))
	}

	out := *p
	out.Todos = todos
	return &out, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, p *project.Project) (*project.Project, error) {
	if p == nil {
		return nil, required("project")
	}
	s.logger.InfoContext(ctx, "creating project", slog.String("name", p.Name))
	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := s.todoClient.CreateProject(ctx, p)
	if err != nil {
		return nil, logged(ctx, s.logger, "CreateProject", err)
	}
	return created, nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id domain.ProjectID, p *project.Project) (*project.Project, error) {
	if p == nil {
		return nil, required("project")
	}
	s.logger.InfoContext(ctx, "updating project", slog.Any("id", id))
	if err := p.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.todoClient.UpdateProject(ctx, id, p)
	if err != nil {
		return nil, logged(ctx, s.logger, "UpdateProject", err, slog.Any("id", id))
	}
	remember(ctx, domain.ProjectRef(id), updated)
	return updated, nil
}

// DeleteProject ungroups the project's todos in parallel and then deletes
// the project. A failed delete puts the todos back.
func (s *ProjectService) DeleteProject(ctx context.Context, id domain.ProjectID) error {
	s.logger.InfoContext(ctx, "deleting project", slog.Any("id", id))

	todos, err := s.projectTodos(ctx, id)
	if err != nil {
		return logged(ctx, s.logger, "DeleteProject", err, slog.Any("id", id))
	}

	// Committing the request's own context would close it to later writes.
	uow := appctx.New(ctx)
	ungroup := make([]domain.Action, 0, len(todos))
	for _, td := range todos {
		ungroup = append(ungroup, &ungroupTodo{client: s.todoClient, original: td})
	}
	if err := uow.AddGroup(ungroup...); err != nil {
		return err
	}
	if err := uow.AddAction(&deleteProject{client: s.todoClient, id: id}); err != nil {
		return err
	}
	if err := uow.Commit(ctx); err != nil {
		return logged(ctx, s.logger, "DeleteProject", err, slog.Any("id", id), slog.Int("todos", len(todos)))
	}

	stale := []domain.EntityRef{domain.ProjectRef(id), projectTodosRef(id)}
	for _, td := range todos {
		stale = append(stale, domain.TodoRef(td.ID))
	}
	forget(ctx, stale...)
	return nil
}

// AddTodo creates td in the project, overriding its ProjectID.
func (s *ProjectService) AddTodo(ctx context.Context, projectID domain.ProjectID, td *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "adding todo to project", slog.Any("project_id", projectID))
	if td == nil {
		return nil, required("todo")
	}
	td.ProjectID = &projectID
	if err := td.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireProject(ctx, "AddTodo", projectID); err != nil {
		return nil, err
	}

	created, err := s.todoClient.CreateTodo(ctx, td)
	if err != nil {
		return nil, logged(ctx, s.logger, "AddTodo", fmt.Errorf("creating todo: %w", err), slog.Any("project_id", projectID))
	}
	forget(ctx, projectTodosRef(projectID))
	return created, nil
}

// UpdateTodo replaces a member todo. A todo of another project is reported
// as not found.
func (s *ProjectService) UpdateTodo(ctx context.Context, projectID domain.ProjectID, todoID domain.TodoID, td *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "updating todo in project", slog.Any("project_id", projectID), slog.Any("todo_id", todoID))
	if td == nil {
		return nil, required("todo")
	}
	td.ProjectID = &projectID
	if err := td.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, "UpdateTodo", projectID, todoID); err != nil {
		return nil, err
	}

	updated, err := s.todoClient.UpdateTodo(ctx, todoID, td)
	if err != nil {
		return nil, logged(ctx, s.logger, "UpdateTodo", fmt.Errorf("updating todo: %w", err),
			slog.Any("project_id", projectID), slog.Any("todo_id", todoID))
	}
	remember(ctx, domain.TodoRef(todoID), updated)
	forget(ctx, projectTodosRef(projectID))
	return updated, nil
}

func (s *ProjectService) RemoveTodo(ctx context.Context, projectID domain.ProjectID, todoID domain.TodoID) error {
	s.logger.InfoContext(ctx, "removing todo from project", slog.Any("project_id", projectID), slog.Any("todo_id", todoID))
	if err := s.requireMember(ctx, "RemoveTodo", projectID, todoID); err != nil {
		return err
	}

	if err := s.todoClient.DeleteTodo(ctx, todoID); err != nil {
		return logged(ctx, s.logger, "RemoveTodo", fmt.Errorf("deleting todo: %w", err),
			slog.Any("project_id", projectID), slog.Any("todo_id", todoID))
	}
	forget(ctx, domain.TodoRef(todoID), projectTodosRef(projectID))
	return nil
}

// BulkUpdateTodos updates member todos concurrently, limits.MaxWorkers at a
// time. A bad batch or a missing project fails the call; anything else
// fails only its item.
//
// Membership is read from one snapshot of the project's todos. Successful
// updates are folded into that snapshot, which then becomes the request's
// cached todo list for the project.
func (s *ProjectService) BulkUpdateTodos(ctx context.Context, projectID domain.ProjectID, updates []ports.TodoUpdate) (*ports.BulkUpdateResult, error) {
	s.logger.InfoContext(ctx, "bulk updating todos", slog.Any("project_id", projectID), slog.Int("count", len(updates)))

	if err := s.checkBatch(updates); err != nil {
		return nil, err
	}
	if err := s.requireProject(ctx, "BulkUpdateTodos", projectID); err != nil {
		return nil, err
	}
	current, err := s.projectTodos(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("loading project todos: %w", err)
	}

	members := indexTodos(current)
	snapshot := appctx.NewRef(maps.Clone(members))
	results := fanout.Run(ctx, s.limits.MaxWorkers, updates, func(ctx context.Context, u ports.TodoUpdate) (todo.Todo, error) {
		if _, ok := members[u.TodoID]; !ok {
			return todo.Todo{}, domain.NewNotFoundError(domain.KindTodo, u.TodoID)
		}
		td := *u.Todo
		td.ProjectID = &projectID
		if err := td.Validate(); err != nil {
			return todo.Todo{}, err
		}
		updated, err := s.todoClient.UpdateTodo(ctx, u.TodoID, &td)
		if err != nil {
			return todo.Todo{}, err
		}
		snapshot.Update(func(m *map[domain.TodoID]todo.Todo) { (*m)[u.TodoID] = *updated })
		return *updated, nil
	})

	updated, failed := fanout.Partition(updates, results)
	result := &ports.BulkUpdateResult{Updated: updated}
	for _, f := range failed {
		s.logger.WarnContext(ctx, "bulk item failed",
			slog.Any("project_id", projectID),
			slog.Any("todo_id", f.Item.TodoID),
			slog.Any("error", f.Err),
		)
		result.Errors = append(result.Errors, ports.BulkUpdateError{TodoID: f.Item.TodoID, Err: f.Err})
	}
	if len(updated) > 0 {
		remember(ctx, projectTodosRef(projectID), inOrder(current, snapshot.Get()))
	}

	s.metrics.RecordBulkItems(ctx, len(result.Updated), len(result.Errors))
	return result, nil
}

func (s *ProjectService) checkBatch(updates []ports.TodoUpdate) error {
	v := domain.Violations{}
	v.Check(len(updates) > 0, "updates", domain.MsgNotEmpty)
	v.Check(len(updates) <= s.limits.MaxItems, "updates", "at most %d items, got %d", s.limits.MaxItems, len(updates))

	seen := make(map[domain.TodoID]bool, len(updates))
	for i, u := range updates {
		field := fmt.Sprintf("updates[%d]", i)
		v.Check(u.Todo != nil, field, "todo %s", domain.MsgRequired)
		v.Check(!u.TodoID.IsZero(), field, "todo_id %s", domain.MsgRequired)
		v.Check(!seen[u.TodoID], field, "duplicate todo_id %q", u.TodoID)
		seen[u.TodoID] = true
	}
	return v.Err()
}

// requireProject fails with the project's lookup error, wrapped, when it
// cannot be read.
func (s *ProjectService) requireProject(ctx context.Context, op string, id domain.ProjectID) error {
	if _, err := s.project(ctx, id); err != nil {
		return logged(ctx, s.logger, op, fmt.Errorf("verifying project: %w", err), slog.Any("project_id", id))
	}
	return nil
}

// requireMember checks the project exists and owns todoID.
func (s *ProjectService) requireMember(ctx context.Context, op string, projectID domain.ProjectID, todoID domain.TodoID) error {
	if err := s.requireProject(ctx, op, projectID); err != nil {
		return err
	}
	existing, err := memo(ctx, domain.TodoRef(todoID), func(ctx context.Context) (*todo.Todo, error) {
		return s.todoClient.GetTodo(ctx, todoID)
	})
	if err != nil {
		return fmt.Errorf("fetching todo: %w", err)
	}
	if !existing.BelongsTo(projectID) {
		s.logger.WarnContext(ctx, "todo does not belong to project", slog.Any("project_id", projectID), slog.Any("todo_id", todoID))
		return domain.NewNotFoundError(domain.KindTodo, todoID)
	}
	return nil
}

func (s *ProjectService) project(ctx context.Context, id domain.ProjectID) (*project.Project, error) {
	return memo(ctx, domain.ProjectRef(id), func(ctx context.Context) (*project.Project, error) {
		return s.todoClient.GetProject(ctx, id)
	})
}

func (s *ProjectService) projectTodos(ctx context.Context, id domain.ProjectID) ([]todo.Todo, error) {
	return memo(ctx, projectTodosRef(id), func(ctx context.Context) ([]todo.Todo, error) {
		return s.todoClient.GetProjectTodos(ctx, id, todo.Filter{})
	})
}

func indexTodos(todos []todo.Todo) map[domain.TodoID]todo.Todo {
	m := make(map[domain.TodoID]todo.Todo, len(todos))
	for _, td := range todos {
		m[td.ID] = td
	}
	return m
}

// inOrder lists byID's todos in the order they appear in base.
func inOrder(base []todo.Todo, byID map[domain.TodoID]todo.Todo) []todo.Todo {
	out := make([]todo.Todo, 0, len(base))
	for _, td := range base {
		out = append(out, byID[td.ID])
	}
	return out
}
