package runtime

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/macmee/assignable/state"
)

// UpdateFunc handles an embedder message and returns true if a render is
// needed.
type UpdateFunc func(loop *Loop, msg Message) bool

// PostFunc sends a message into the loop.
// It returns false when the message buffer is full.
type PostFunc func(Message) bool

// Task runs work in a background goroutine. Use the provided context for
// cancellation and PostFunc to emit messages back into the loop.
type Task struct {
	Run func(ctx context.Context, post PostFunc)
}

// TaskID identifies a spawned task.
type TaskID string

// LoopConfig configures a Loop.
type LoopConfig struct {
	// Render is invoked on the loop goroutine once per dirty pass. This is
	// where the embedding UI framework re-reads current values and repaints.
	Render func()
	// Update handles messages the loop does not consume itself.
	Update UpdateFunc
	// MessageBuffer sizes the message channel. Defaults to 128.
	MessageBuffer int
	// StateQueue receives scheduled state callbacks. Defaults to a new queue.
	StateQueue *state.Queue
}

// Loop is a single-goroutine message loop. Everything scheduled through its
// state scheduler mutates and notifies on the loop goroutine, so readers on
// that goroutine never race with upstream sources.
type Loop struct {
	render         func()
	update         UpdateFunc
	messages       chan Message
	queue          *state.Queue
	queueScheduler *QueueScheduler
	invalidator    *Invalidator

	taskMu       sync.Mutex
	taskCtx      context.Context
	taskCancel   context.CancelFunc
	tasks        map[TaskID]context.CancelFunc
	pendingTasks []pendingTask

	running bool
	dirty   bool
}

type pendingTask struct {
	id   TaskID
	task Task
}

// NewLoop creates a loop from config.
func NewLoop(cfg LoopConfig) *Loop {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	l := &Loop{
		render:   cfg.Render,
		update:   cfg.Update,
		messages: make(chan Message, bufferSize),
		queue:    queue,
		tasks:    make(map[TaskID]context.CancelFunc),
	}
	l.queueScheduler = NewQueueScheduler(queue, l.tryPost)
	l.invalidator = NewInvalidator(l.tryPost)
	return l
}

// StateQueue returns the loop's state queue.
func (l *Loop) StateQueue() *state.Queue {
	if l == nil {
		return nil
	}
	return l.queue
}

// StateScheduler returns a scheduler that wakes the loop to flush. Cells
// constructed with it apply upstream emissions on the loop goroutine.
func (l *Loop) StateScheduler() state.Scheduler {
	if l == nil || l.queueScheduler == nil {
		return nil
	}
	return l.queueScheduler
}

// InvalidateScheduler returns a scheduler that runs the callback and then
// requests a render pass.
func (l *Loop) InvalidateScheduler() state.Scheduler {
	if l == nil || l.invalidator == nil {
		return nil
	}
	return l.invalidator
}

// Invalidate requests a render pass.
func (l *Loop) Invalidate() {
	if l == nil || l.invalidator == nil {
		return
	}
	l.invalidator.Invalidate()
}

// Post sends a message to the loop, dropping it if the buffer is full.
func (l *Loop) Post(msg Message) {
	_ = l.tryPost(msg)
}

// TryPost sends a message to the loop without blocking.
func (l *Loop) TryPost(msg Message) bool {
	return l.tryPost(msg)
}

// Stop asks the loop to exit after the current pass.
func (l *Loop) Stop() {
	l.Post(StopMsg{})
}

func (l *Loop) tryPost(msg Message) bool {
	if l == nil || l.messages == nil || msg == nil {
		return false
	}
	select {
	case l.messages <- msg:
		return true
	default:
		return false
	}
}

// Spawn starts a task tied to the loop's lifetime and returns its ID.
// Tasks spawned before Run are held until the loop starts; tasks end when
// they return, when cancelled by ID, or when the loop exits.
func (l *Loop) Spawn(task Task) TaskID {
	if l == nil || task.Run == nil {
		return ""
	}
	id := TaskID(ulid.Make().String())
	l.taskMu.Lock()
	if l.taskCtx == nil {
		l.pendingTasks = append(l.pendingTasks, pendingTask{id: id, task: task})
		l.taskMu.Unlock()
		return id
	}
	l.startTaskLocked(id, task)
	l.taskMu.Unlock()
	return id
}

// Cancel stops the task with the given ID, if it is still running.
func (l *Loop) Cancel(id TaskID) {
	if l == nil || id == "" {
		return
	}
	l.taskMu.Lock()
	cancel := l.tasks[id]
	delete(l.tasks, id)
	for i, p := range l.pendingTasks {
		if p.id == id {
			l.pendingTasks = append(l.pendingTasks[:i], l.pendingTasks[i+1:]...)
			break
		}
	}
	l.taskMu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (l *Loop) startTaskLocked(id TaskID, task Task) {
	ctx, cancel := context.WithCancel(l.taskCtx)
	l.tasks[id] = cancel
	go func() {
		defer func() {
			cancel()
			l.taskMu.Lock()
			delete(l.tasks, id)
			l.taskMu.Unlock()
		}()
		task.Run(ctx, l.tryPost)
	}()
}

func (l *Loop) startPendingTasks() {
	l.taskMu.Lock()
	pending := l.pendingTasks
	l.pendingTasks = nil
	for _, p := range pending {
		l.startTaskLocked(p.id, p.task)
	}
	l.taskMu.Unlock()
}

// Run processes messages until Stop or context cancellation. It must be the
// only goroutine running the loop; render and update callbacks execute here.
func (l *Loop) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	taskCtx, taskCancel := context.WithCancel(ctx)
	l.taskMu.Lock()
	l.taskCtx = taskCtx
	l.taskMu.Unlock()
	defer func() {
		taskCancel()
		l.taskMu.Lock()
		l.taskCtx = nil
		l.tasks = make(map[TaskID]context.CancelFunc)
		l.taskMu.Unlock()
	}()

	l.startPendingTasks()

	l.running = true

	// Initial frame, so embedders see current values before any message.
	if l.render != nil {
		l.render()
	}
	l.dirty = false

	for l.running {
		select {
		case <-ctx.Done():
			l.running = false
		case msg := <-l.messages:
			l.handle(msg)
		}

		if !l.running {
			continue
		}

		if l.dirty {
			if l.render != nil {
				l.render()
			}
			l.dirty = false
		}
	}

	return ctx.Err()
}

func (l *Loop) handle(msg Message) {
	switch msg.(type) {
	case StopMsg:
		l.running = false
	case QueueFlushMsg:
		// Reset before flushing so callbacks scheduled during the flush
		// post a fresh wake-up.
		l.queueScheduler.resetPending()
		if l.queue.Flush() > 0 {
			l.dirty = true
		}
	case InvalidateMsg:
		l.invalidator.resetPending()
		l.dirty = true
	default:
		if l.update != nil && l.update(l, msg) {
			l.dirty = true
		}
	}
}
