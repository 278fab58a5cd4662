package audit

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sink receives audit records.
type Sink interface {
	Emit(ctx context.Context, rec Record)
}

type SinkFunc func(ctx context.Context, rec Record)

func (f SinkFunc) Emit(ctx context.Context, rec Record) { f(ctx, rec) }

// MultiSink fans a record out to every sink in order.
type MultiSink []Sink

func (m MultiSink) Emit(ctx context.Context, rec Record) {
	for _, s := range m {
		s.Emit(ctx, rec)
	}
}

// LogSink writes each record as one structured log entry.
type LogSink struct {
	log logrus.FieldLogger
}

func NewLogSink(logger logrus.FieldLogger) *LogSink {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogSink{log: logger}
}

func (s *LogSink) Emit(_ context.Context, rec Record) {
	fields := logrus.Fields{
		"kind":     string(rec.Kind),
		"pizza_id": rec.PizzaID,
		"current":  rec.Current,
		"at":       rec.At,
	}
	if rec.Kind == KindWrite {
		if rec.Previous != nil {
			fields["previous"] = *rec.Previous
		} else {
			fields["previous"] = "none"
		}
	}
	s.log.WithFields(fields).Info("Pizza audit record")
}

// DefaultJournalSize is the number of records a Journal keeps when created
// with a non-positive limit.
const DefaultJournalSize = 100

// Journal keeps the most recent records in memory.
type Journal struct {
	mu      sync.RWMutex
	limit   int
	records []Record
}

func NewJournal(limit int) *Journal {
	if limit <= 0 {
		limit = DefaultJournalSize
	}
	return &Journal{limit: limit}
}

func (j *Journal) Emit(_ context.Context, rec Record) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.records = append(j.records, rec)
	if over := len(j.records) - j.limit; over > 0 {
		j.records = append(j.records[:0], j.records[over:]...)
	}
}

// Recent returns up to n records, newest first. n <= 0 returns all of them.
func (j *Journal) Recent(n int) []Record {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if n <= 0 || n > len(j.records) {
		n = len(j.records)
	}
	out := make([]Record, 0, n)
	for i := len(j.records) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, j.records[i])
	}
	return out
}
