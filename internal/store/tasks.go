package store

import "taskclient/internal/models"

// Tasks holds the local task collection. After a fetch the ordering is
// whatever the server responded with; a created task is appended at the
// end and may sit out of server order until the next full fetch. That
// divergence is deliberate and matches the behavior shipped to users.
type Tasks struct {
	state
	tasks []models.Task
}

func NewTasks() *Tasks {
	return &Tasks{}
}

// ReplaceAll swaps in the full server result, dropping whatever was
// held before. Clearing a server-side filter is just another ReplaceAll
// with the unfiltered result.
func (t *Tasks) ReplaceAll(tasks []models.Task) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.settleLocked()
	t.tasks = append([]models.Task(nil), tasks...)
	t.notifyLocked()
}

func (t *Tasks) Append(task models.Task) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.settleLocked()
	t.tasks = append(t.tasks, task)
	t.notifyLocked()
}

// Update replaces the entity with a matching id. An update whose id is
// not present is silently dropped, never inserted.
func (t *Tasks) Update(task models.Task) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.settleLocked()
	for i := range t.tasks {
		if t.tasks[i].ID == task.ID {
			t.tasks[i] = task
			break
		}
	}
	t.notifyLocked()
}

// Remove filters out the entity by identity. References other tasks may
// hold to it are not touched.
func (t *Tasks) Remove(id string) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	t.settleLocked()
	kept := t.tasks[:0]
	for _, task := range t.tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	t.tasks = kept
	t.notifyLocked()
}

func (t *Tasks) All() []models.Task {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return append([]models.Task(nil), t.tasks...)
}

func (t *Tasks) Get(id string) (models.Task, bool) {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	for _, task := range t.tasks {
		if task.ID == id {
			return task, true
		}
	}
	return models.Task{}, false
}

func (t *Tasks) Len() int {
	t.mtx.Lock()
	defer t.mtx.Unlock()
	return len(t.tasks)
}
