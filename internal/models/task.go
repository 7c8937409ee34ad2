package models

// Task keeps its priority and category relations as plain ids. The
// referenced entities are resolved by store lookup when needed, so a
// deleted category or priority never dangles here.
type Task struct {
	ID         string   `json:"_id"`
	Name       string   `json:"name"`
	DateTime   string   `json:"dateTime"`
	Deadline   string   `json:"deadline"`
	Completed  bool     `json:"completed"`
	Priority   string   `json:"priority,omitempty"`
	Categories []string `json:"category,omitempty"`
	CreatedBy  string   `json:"createdBy,omitempty"`
}

type Category struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
}

type Priority struct {
	ID        string `json:"_id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	CreatedBy string `json:"createdBy,omitempty"`
}

type CreateTask struct {
	Name       string   `json:"name"`
	DateTime   string   `json:"dateTime"`
	Deadline   string   `json:"deadline"`
	Completed  bool     `json:"completed"`
	Priority   string   `json:"priority,omitempty"`
	Categories []string `json:"category,omitempty"`
}

// UpdateTask carries only the fields the caller wants changed.
type UpdateTask struct {
	Name       *string   `json:"name,omitempty"`
	DateTime   *string   `json:"dateTime,omitempty"`
	Deadline   *string   `json:"deadline,omitempty"`
	Completed  *bool     `json:"completed,omitempty"`
	Priority   *string   `json:"priority,omitempty"`
	Categories *[]string `json:"category,omitempty"`
}

type CreateCategory struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

type CreatePriority struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
