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
	titleCategoriesFetched = "Categories Fetched Successfully"
	titleCategoryCreated   = "Category Created"
	titleCategoryDeleted   = "Category Deleted"
	failFetchingCategories = "Fetching Categories Failed"
	failCreatingCategory   = "Creating Category Failed"
	failDeletingCategory   = "Deleting Category Failed"
)

type CategoryActions struct {
	api        API
	categories *store.Categories
	notify     notify.Notifier
}

func NewCategoryActions(apiClient API, categories *store.Categories, notifier notify.Notifier) *CategoryActions {
	return &CategoryActions{
		api:        apiClient,
		categories: categories,
		notify:     notifier,
	}
}

func (a *CategoryActions) Fetch(ctx context.Context) {
	a.categories.Begin()

	env, err := a.api.Get(ctx, api.EndpointFetchCategories, nil)
	if err != nil {
		a.rejected(failFetchingCategories, err)
		return
	}

	var categories []models.Category
	if err := env.Decode(&categories); err != nil {
		a.rejected(failFetchingCategories, err)
		return
	}

	a.categories.ReplaceAll(categories)
	a.notify.Success(titleCategoriesFetched, env.Message)
}

func (a *CategoryActions) Create(ctx context.Context, payload models.CreateCategory) {
	if payload.Name == "" {
		a.categories.Fail("Category name cannot be empty")
		a.notify.Failure(failCreatingCategory, "Category name cannot be empty")
		return
	}

	a.categories.Begin()

	env, err := a.api.Post(ctx, api.EndpointCreateCategory, payload)
	if err != nil {
		a.rejected(failCreatingCategory, err)
		return
	}

	var created models.Category
	if err := env.Decode(&created); err != nil {
		a.rejected(failCreatingCategory, err)
		return
	}

	a.categories.Append(created)
	a.notify.Success(titleCategoryCreated, env.Message)
}

func (a *CategoryActions) Delete(ctx context.Context, id string) {
	a.categories.Begin()

	env, err := a.api.Delete(ctx, api.EndpointDeleteCategory(id))
	if err != nil {
		a.rejected(failDeletingCategory, err)
		return
	}

	a.categories.Remove(id)
	a.notify.Success(titleCategoryDeleted, env.Message)
}

func (a *CategoryActions) rejected(title string, err error) {
	msg := api.ErrorMessage(err, title)
	logger.Error("ACTION: "+title, err)
	a.categories.Fail(msg)
	a.notify.Failure(title, msg)
}
