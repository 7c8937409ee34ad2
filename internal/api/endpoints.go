package api

// Endpoint paths on the remote task API.
const (
	EndpointLogin    = "/auth/login"
	EndpointRegister = "/auth/register"

	EndpointUpdateUser = "/user/update"
	EndpointDeleteUser = "/user/delete"

	EndpointFetchTasks = "/task/all"
	EndpointCreateTask = "/task/create"

	EndpointFetchCategories = "/category/getAll"
	EndpointCreateCategory  = "/category/create"

	EndpointFetchPriorities = "/priority/getAll"
	EndpointCreatePriority  = "/priority/create"
)

func EndpointUpdateTask(id string) string { return "/task/edit/" + id }
func EndpointDeleteTask(id string) string { return "/task/delete/" + id }

func EndpointDeleteCategory(id string) string { return "/category/delete/" + id }
func EndpointDeletePriority(id string) string { return "/priority/delete/" + id }
