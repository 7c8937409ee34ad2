package actions

import (
	"context"
	"net/url"

	"taskclient/internal/api"
	"taskclient/internal/logger"
	"taskclient/internal/models"
	"taskclient/internal/notify"
	"taskclient/internal/store"
)

const (
	titleTasksFetched = "Tasks Fetched Successfully"
	titleTaskCreated  = "Task Created"
	titleTaskUpdated  = "Task Updated"
	titleTaskDeleted  = "Task Deleted"
	failFetchingTasks = "Fetching Tasks Failed"
	failCreatingTask  = "Creating Task Failed"
	failUpdatingTask  = "Updating Task Failed"
	failDeletingTask  = "Deleting Task Failed"
)

// Filter is passed through to the server untouched; the response fully
// replaces the local collection. Clearing filters is a second,
// unfiltered Fetch.
type Filter struct {
	Category string
	Priority string
	DueDate  string
}

func (f Filter) query() url.Values {
	query := url.Values{}
	if f.Category != "" {
		query.Set("category", f.Category)
	}
	if f.Priority != "" {
		query.Set("priority", f.Priority)
	}
	if f.DueDate != "" {
		query.Set("dueDate", f.DueDate)
	}
	return query
}

type TaskActions struct {
	api    API
	tasks  *store.Tasks
	notify notify.Notifier
}

func NewTaskActions(apiClient API, tasks *store.Tasks, notifier notify.Notifier) *TaskActions {
	return &TaskActions{
		api:    apiClient,
		tasks:  tasks,
		notify: notifier,
	}
}

func (a *TaskActions) Fetch(ctx context.Context, filter Filter) {
	a.tasks.Begin()

	env, err := a.api.Get(ctx, api.EndpointFetchTasks, filter.query())
	if err != nil {
		a.rejected(failFetchingTasks, failFetchingTasks, err)
		return
	}

	var tasks []models.Task
	if err := env.Decode(&tasks); err != nil {
		a.rejected(failFetchingTasks, failFetchingTasks, err)
		return
	}

	a.tasks.ReplaceAll(tasks)
	a.notify.Success(titleTasksFetched, env.Message)
}

func (a *TaskActions) Create(ctx context.Context, payload models.CreateTask) {
	if payload.Name == "" {
		// Rejected before any network call: no Pending transition.
		a.tasks.Fail("Task name cannot be empty")
		a.notify.Failure(failCreatingTask, "Task name cannot be empty")
		return
	}

	a.tasks.Begin()

	env, err := a.api.Post(ctx, api.EndpointCreateTask, payload)
	if err != nil {
		a.rejected(failCreatingTask, failCreatingTask, err)
		return
	}

	var created models.Task
	if err := env.Decode(&created); err != nil {
		a.rejected(failCreatingTask, failCreatingTask, err)
		return
	}

	// Appended at the end regardless of server ordering; the next full
	// fetch re-establishes canonical order.
	a.tasks.Append(created)
	a.notify.Success(titleTaskCreated, env.Message)
}

func (a *TaskActions) Update(ctx context.Context, id string, patch models.UpdateTask) {
	a.tasks.Begin()

	env, err := a.api.Patch(ctx, api.EndpointUpdateTask(id), patch)
	if err != nil {
		a.rejected(failUpdatingTask, failUpdatingTask, err)
		return
	}

	var updated models.Task
	if err := env.Decode(&updated); err != nil {
		a.rejected(failUpdatingTask, failUpdatingTask, err)
		return
	}

	a.tasks.Update(updated)
	a.notify.Success(titleTaskUpdated, env.Message)
}

// ToggleCompleted flips the completed flag through a partial update.
func (a *TaskActions) ToggleCompleted(ctx context.Context, id string) {
	task, ok := a.tasks.Get(id)
	if !ok {
		a.tasks.Fail("Task not found")
		a.notify.Failure(failUpdatingTask, "Task not found")
		return
	}

	completed := !task.Completed
	a.Update(ctx, id, models.UpdateTask{Completed: &completed})
}

func (a *TaskActions) Delete(ctx context.Context, id string) {
	a.tasks.Begin()

	env, err := a.api.Delete(ctx, api.EndpointDeleteTask(id))
	if err != nil {
		a.rejected(failDeletingTask, failDeletingTask, err)
		return
	}

	a.tasks.Remove(id)
	a.notify.Success(titleTaskDeleted, env.Message)
}

func (a *TaskActions) rejected(title, fallback string, err error) {
	msg := api.ErrorMessage(err, fallback)
	logger.Error("ACTION: "+title, err)
	a.tasks.Fail(msg)
	a.notify.Failure(title, msg)
}
