package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
)

// PizzaHandler observes one lifecycle event of a pizza row.
type PizzaHandler = func(ctx context.Context, pizza models.Pizza)

type lifecycleEvent string

const (
	eventAfterLoad    lifecycleEvent = "after_load"
	eventAfterWrite   lifecycleEvent = "after_write"
	eventBeforeDelete lifecycleEvent = "before_delete"
)

// PizzaHooks is the handler registry of a pizza store. The store calls the
// handlers synchronously, in registration order. Each handler gets its own
// copy of the row and a panicking handler is logged and skipped, so handlers
// can never change the outcome of the store operation.
type PizzaHooks struct {
	mu           sync.RWMutex
	afterLoad    []PizzaHandler
	afterWrite   []PizzaHandler
	beforeDelete []PizzaHandler
	log          logrus.FieldLogger
}

func NewPizzaHooks(logger logrus.FieldLogger) *PizzaHooks {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &PizzaHooks{log: logger}
}

// OnAfterLoad registers fn for every row read from storage.
func (h *PizzaHooks) OnAfterLoad(fn PizzaHandler) {
	h.register(eventAfterLoad, fn)
}

// OnAfterWrite registers fn for every row inserted or updated through Save.
func (h *PizzaHooks) OnAfterWrite(fn PizzaHandler) {
	h.register(eventAfterWrite, fn)
}

// OnBeforeDelete registers fn for every row about to be deleted.
func (h *PizzaHooks) OnBeforeDelete(fn PizzaHandler) {
	h.register(eventBeforeDelete, fn)
}

func (h *PizzaHooks) register(event lifecycleEvent, fn PizzaHandler) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	switch event {
	case eventAfterLoad:
		h.afterLoad = append(h.afterLoad, fn)
	case eventAfterWrite:
		h.afterWrite = append(h.afterWrite, fn)
	case eventBeforeDelete:
		h.beforeDelete = append(h.beforeDelete, fn)
	}
}

func (h *PizzaHooks) handlers(event lifecycleEvent) []PizzaHandler {
	h.mu.RLock()
	defer h.mu.RUnlock()
	switch event {
	case eventAfterLoad:
		return slices.Clone(h.afterLoad)
	case eventAfterWrite:
		return slices.Clone(h.afterWrite)
	case eventBeforeDelete:
		return slices.Clone(h.beforeDelete)
	}
	return nil
}

func (h *PizzaHooks) fire(ctx context.Context, event lifecycleEvent, pizzas ...models.Pizza) {
	if h == nil {
		return
	}
	handlers := h.handlers(event)
	if len(handlers) == 0 {
		return
	}
	for _, p := range pizzas {
		for _, fn := range handlers {
			h.call(ctx, event, fn, p.Clone())
		}
	}
}

func (h *PizzaHooks) call(ctx context.Context, event lifecycleEvent, fn PizzaHandler, pizza models.Pizza) {
	defer func() {
		if r := recover(); r != nil {
			h.log.WithFields(logrus.Fields{
				"event":    string(event),
				"pizza_id": pizza.ID,
				"panic":    r,
			}).Warn("Pizza lifecycle handler failed")
		}
	}()
	fn(ctx, pizza)
}
