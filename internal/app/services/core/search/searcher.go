// Package search issues debounced, cancelable directory queries whose results
// are applied in issue order: a response never overwrites the results of a
// request issued after it.
package search

import (
	"clinic-booking-service/internal/pkg/constvars"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const FilterAll = "all"

type Record interface {
	RecordID() string
}

type Query struct {
	Text   string `json:"query"`
	Filter string `json:"filter"`
}

type FetchFunc[T Record] func(ctx context.Context, query Query) ([]T, error)

type Timer interface {
	Stop() bool
}

// AfterFunc schedules f after d. time.AfterFunc is the default.
type AfterFunc func(d time.Duration, f func()) Timer

func stdAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type Options struct {
	Name      string
	Debounce  time.Duration
	AfterFunc AfterFunc
}

type Snapshot[T Record] struct {
	Query   Query
	Records []T
	Loading bool
	Pending bool
	Err     error
	Seq     uint64
}

type Searcher[T Record] struct {
	name      string
	fetch     FetchFunc[T]
	debounce  time.Duration
	afterFunc AfterFunc
	log       *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu           sync.Mutex
	closed       bool
	timer        Timer
	timerGen     uint64
	pendingQuery Query
	issued       uint64
	applied      uint64
	query        Query
	records      []T
	err          error
}

// New keeps the values of parent (session token, request ID) for every fetch
// but not its cancellation; only Close cancels.
func New[T Record](parent context.Context, fetch FetchFunc[T], opts Options, logger *zap.Logger) *Searcher[T] {
	afterFunc := opts.AfterFunc
	if afterFunc == nil {
		afterFunc = stdAfterFunc
	}
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	return &Searcher[T]{
		name:      opts.Name,
		fetch:     fetch,
		debounce:  opts.Debounce,
		afterFunc: afterFunc,
		log:       logger,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Input records a query change. Only the last input within the debounce window
// is issued; earlier pending inputs are dropped.
func (s *Searcher[T]) Input(query Query) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timerGen++
	gen := s.timerGen
	s.pendingQuery = query
	s.timer = s.afterFunc(s.debounce, func() { s.fire(gen) })
}

func (s *Searcher[T]) fire(gen uint64) {
	s.mu.Lock()
	if s.closed || gen != s.timerGen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	query := s.pendingQuery
	s.mu.Unlock()

	s.Issue(query)
}

// Issue starts a request immediately and returns its sequence number, or 0
// when the searcher is closed. Any pending debounced input is dropped.
func (s *Searcher[T]) Issue(query Query) uint64 {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return 0
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
		s.timerGen++
	}
	s.issued++
	seq := s.issued
	s.query = query
	ctx := s.ctx
	s.wg.Add(1)
	s.mu.Unlock()

	s.log.Debug("Searcher.Issue called",
		zap.String(constvars.LoggingSearchNameKey, s.name),
		zap.Uint64(constvars.LoggingSearchSeqKey, seq),
		zap.String(constvars.LoggingSearchQueryKey, query.Text),
	)

	go s.run(ctx, seq, query)
	return seq
}

func (s *Searcher[T]) run(ctx context.Context, seq uint64, query Query) {
	defer s.wg.Done()
	records, err := s.fetch(ctx, query)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if seq <= s.applied {
		s.log.Debug("Searcher discarding stale result",
			zap.String(constvars.LoggingSearchNameKey, s.name),
			zap.Uint64(constvars.LoggingSearchSeqKey, seq),
			zap.Uint64(constvars.LoggingSearchAppliedKey, s.applied),
		)
		return
	}
	s.applied = seq
	if err != nil {
		s.log.Warn("Searcher request failed",
			zap.String(constvars.LoggingSearchNameKey, s.name),
			zap.Uint64(constvars.LoggingSearchSeqKey, seq),
			zap.Error(err),
		)
		s.records = nil
		s.err = err
		return
	}
	s.records = records
	s.err = nil
}

func (s *Searcher[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]T, len(s.records))
	copy(records, s.records)
	return Snapshot[T]{
		Query:   s.query,
		Records: records,
		Loading: s.applied < s.issued,
		Pending: s.timer != nil,
		Err:     s.err,
		Seq:     s.applied,
	}
}

// Find looks id up in the currently applied results.
func (s *Searcher[T]) Find(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, record := range s.records {
		if record.RecordID() == id {
			return record, true
		}
	}
	var zero T
	return zero, false
}

// Close cancels in-flight requests and the pending input. Nothing mutates the
// searcher afterwards.
func (s *Searcher[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// Wait blocks until every issued request has returned.
func (s *Searcher[T]) Wait() {
	s.wg.Wait()
}
