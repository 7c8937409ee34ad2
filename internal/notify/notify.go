// Package notify is the toast sink: fire-and-forget notifications with
// a fixed title per operation and a detail line from the server or a
// fallback.
package notify

import (
	"sync"

	"taskclient/internal/logger"

	"go.uber.org/zap"
)

type Notifier interface {
	Success(title, detail string)
	Failure(title, detail string)
}

// LogNotifier renders toasts into the structured log.
type LogNotifier struct{}

func (LogNotifier) Success(title, detail string) {
	logger.Info("TOAST: "+title, zap.String("detail", detail))
}

func (LogNotifier) Failure(title, detail string) {
	logger.Warn("TOAST: "+title, zap.String("detail", detail))
}

// Toast is one recorded notification.
type Toast struct {
	Success bool
	Title   string
	Detail  string
}

// Recorder keeps every toast it receives. Tests assert on it and the
// CLI prints the last entry after each command.
type Recorder struct {
	mtx    sync.Mutex
	toasts []Toast
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(title, detail string) {
	r.record(Toast{Success: true, Title: title, Detail: detail})
}

func (r *Recorder) Failure(title, detail string) {
	r.record(Toast{Success: false, Title: title, Detail: detail})
}

func (r *Recorder) record(t Toast) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.toasts = append(r.toasts, t)
}

func (r *Recorder) All() []Toast {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]Toast(nil), r.toasts...)
}

func (r *Recorder) Last() (Toast, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	if len(r.toasts) == 0 {
		return Toast{}, false
	}
	return r.toasts[len(r.toasts)-1], true
}
