// Package audit keeps a before/after trail of catalog writes. It observes a
// pizza store through its lifecycle hooks and holds no persistent state.
package audit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-faster/errors"
	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

type Kind string

const (
	KindWrite  Kind = "write"
	KindDelete Kind = "delete"
)

// Record is one audit entry. Previous is nil when no snapshot was taken
// before the write, as for a first insert.
type Record struct {
	Kind     Kind          `json:"kind"`
	PizzaID  int           `json:"pizza_id"`
	Previous *models.Pizza `json:"previous"`
	Current  models.Pizza  `json:"current"`
	At       time.Time     `json:"at"`
}

// State is the audit lifecycle of one pizza id.
type State int

const (
	Unobserved State = iota
	Loaded
	Written
	PreDeleted
)

func (s State) String() string {
	switch s {
	case Unobserved:
		return "unobserved"
	case Loaded:
		return "loaded"
	case Written:
		return "written"
	case PreDeleted:
		return "pre_deleted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Copier produces an independent snapshot of a pizza.
type Copier func(models.Pizza) (models.Pizza, error)

func cloneCopier(p models.Pizza) (models.Pizza, error) {
	return p.Clone(), nil
}

// Registrar is the hook registry of a pizza store.
type Registrar interface {
	OnAfterLoad(fn func(ctx context.Context, pizza models.Pizza))
	OnAfterWrite(fn func(ctx context.Context, pizza models.Pizza))
	OnBeforeDelete(fn func(ctx context.Context, pizza models.Pizza))
}

type Option func(*Recorder)

func WithCopier(c Copier) Option {
	return func(r *Recorder) { r.copy = c }
}

func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(r *Recorder) { r.log = logger }
}

// Recorder turns lifecycle events into audit records. Snapshots are kept
// per pizza id and dropped after the write or delete that consumes them.
// Recorder never fails the store operation it observes: copy errors drop
// the snapshot and sink panics are logged.
type Recorder struct {
	sink Sink
	copy Copier
	now  func() time.Time
	log  logrus.FieldLogger

	mu        sync.Mutex
	snapshots map[int]models.Pizza
	states    map[int]State
}

func NewRecorder(sink Sink, opts ...Option) *Recorder {
	r := &Recorder{
		sink:      sink,
		copy:      cloneCopier,
		now:       time.Now,
		snapshots: make(map[int]models.Pizza),
		states:    make(map[int]State),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.log == nil {
		r.log = logrus.StandardLogger()
	}
	if r.sink == nil {
		r.sink = NewLogSink(r.log)
	}
	return r
}

// Attach registers the recorder on a store's hooks.
func (r *Recorder) Attach(reg Registrar) {
	reg.OnAfterLoad(r.OnLoad)
	reg.OnAfterWrite(r.OnWrite)
	reg.OnBeforeDelete(r.OnPreDelete)
}

// OnLoad remembers the state of a pizza read from storage.
func (r *Recorder) OnLoad(_ context.Context, p models.Pizza) {
	snap, err := r.snapshot(p)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		delete(r.snapshots, p.ID)
		r.log.WithError(err).WithField("pizza_id", p.ID).Warn("Audit snapshot skipped")
	} else {
		r.snapshots[p.ID] = snap
	}
	r.states[p.ID] = Loaded
}

// OnWrite emits a write record with the last snapshot of the pizza, if any.
func (r *Recorder) OnWrite(ctx context.Context, p models.Pizza) {
	r.mu.Lock()
	prev, ok := r.snapshots[p.ID]
	delete(r.snapshots, p.ID)
	r.states[p.ID] = Written
	r.mu.Unlock()

	rec := Record{Kind: KindWrite, PizzaID: p.ID, Current: p.Clone(), At: r.now()}
	if ok {
		rec.Previous = &prev
	}
	r.emit(ctx, rec)
}

// OnPreDelete emits a delete record with the state the row had right before
// removal.
func (r *Recorder) OnPreDelete(ctx context.Context, p models.Pizza) {
	r.mu.Lock()
	delete(r.snapshots, p.ID)
	r.states[p.ID] = PreDeleted
	r.mu.Unlock()

	r.emit(ctx, Record{Kind: KindDelete, PizzaID: p.ID, Current: p.Clone(), At: r.now()})
}

// State returns the lifecycle state the recorder tracks for id.
func (r *Recorder) State(id int) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[id]
}

func (r *Recorder) snapshot(p models.Pizza) (snap models.Pizza, err error) {
	defer func() {
		if v := recover(); v != nil {
			err = errors.Errorf("copier panicked: %v", v)
		}
	}()
	return r.copy(p)
}

func (r *Recorder) emit(ctx context.Context, rec Record) {
	defer func() {
		if v := recover(); v != nil {
			r.log.WithFields(logrus.Fields{
				"pizza_id": rec.PizzaID,
				"kind":     string(rec.Kind),
				"panic":    v,
			}).Warn("Audit sink failed")
		}
	}()
	r.sink.Emit(ctx, rec)
}
