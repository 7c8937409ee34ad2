package store

import "taskclient/internal/models"

// Priorities is reference data, same lifecycle as Categories.
type Priorities struct {
	state
	priorities []models.Priority
}

func NewPriorities() *Priorities {
	return &Priorities{}
}

func (p *Priorities) ReplaceAll(priorities []models.Priority) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.settleLocked()
	p.priorities = append([]models.Priority(nil), priorities...)
	p.notifyLocked()
}

func (p *Priorities) Append(priority models.Priority) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.settleLocked()
	p.priorities = append(p.priorities, priority)
	p.notifyLocked()
}

func (p *Priorities) Remove(id string) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	p.settleLocked()
	kept := p.priorities[:0]
	for _, priority := range p.priorities {
		if priority.ID != id {
			kept = append(kept, priority)
		}
	}
	p.priorities = kept
	p.notifyLocked()
}

func (p *Priorities) All() []models.Priority {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return append([]models.Priority(nil), p.priorities...)
}

func (p *Priorities) ByID(id string) (models.Priority, bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	for _, priority := range p.priorities {
		if priority.ID == id {
			return priority, true
		}
	}
	return models.Priority{}, false
}
