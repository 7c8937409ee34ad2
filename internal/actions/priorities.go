package actions

import (
	"context"

	"taskclient/internal/api"
	"taskclient/internal/logger"
	"taskclient/internal/models"
	"taskclient/internal/notify"
	"taskclient/internal/store"
)

const (
	titlePrioritiesFetched = "Priorities Fetched Successfully"
	titlePriorityCreated   = "Priority Created"
	titlePriorityDeleted   = "Priority Deleted"
	failFetchingPriorities = "Fetching Priorities Failed"
	failCreatingPriority   = "Creating Priority Failed"
	failDeletingPriority   = "Deleting Priority Failed"
)

type PriorityActions struct {
	api        API
	priorities *store.Priorities
	notify     notify.Notifier
}

func NewPriorityActions(apiClient API, priorities *store.Priorities, notifier notify.Notifier) *PriorityActions {
	return &PriorityActions{
		api:        apiClient,
		priorities: priorities,
		notify:     notifier,
	}
}

func (a *PriorityActions) Fetch(ctx context.Context) {
	a.priorities.Begin()

	env, err := a.api.Get(ctx, api.EndpointFetchPriorities, nil)
	if err != nil {
		a.rejected(failFetchingPriorities, err)
		return
	}

	var priorities []models.Priority
	if err := env.Decode(&priorities); err != nil {
		a.rejected(failFetchingPriorities, err)
		return
	}

	a.priorities.ReplaceAll(priorities)
	a.notify.Success(titlePrioritiesFetched, env.Message)
}

func (a *PriorityActions) Create(ctx context.Context, payload models.CreatePriority) {
	if payload.Name == "" {
		a.priorities.Fail("Priority name cannot be empty")
		a.notify.Failure(failCreatingPriority, "Priority name cannot be empty")
		return
	}

	a.priorities.Begin()

	env, err := a.api.Post(ctx, api.EndpointCreatePriority, payload)
	if err != nil {
		a.rejected(failCreatingPriority, err)
		return
	}

	var created models.Priority
	if err := env.Decode(&created); err != nil {
		a.rejected(failCreatingPriority, err)
		return
	}

	a.priorities.Append(created)
	a.notify.Success(titlePriorityCreated, env.Message)
}

func (a *PriorityActions) Delete(ctx context.Context, id string) {
	a.priorities.Begin()

	env, err := a.api.Delete(ctx, api.EndpointDeletePriority(id))
	if err != nil {
		a.rejected(failDeletingPriority, err)
		return
	}

	a.priorities.Remove(id)
	a.notify.Success(titlePriorityDeleted, env.Message)
}

func (a *PriorityActions) rejected(title string, err error) {
	msg := api.ErrorMessage(err, title)
	logger.Error("ACTION: "+title, err)
	a.priorities.Fail(msg)
	a.notify.Failure(title, msg)
}
