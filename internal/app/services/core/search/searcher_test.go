package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testRecord struct {
	ID string
}

func (r testRecord) RecordID() string { return r.ID }

type fakeTimer struct {
	f       func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	wasActive := !t.stopped
	t.stopped = true
	return wasActive
}

// manualClock hands out timers that only fire when the test says so.
type manualClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	timer := &fakeTimer{f: f}
	c.timers = append(c.timers, timer)
	return timer
}

func (c *manualClock) fireAll() {
	c.mu.Lock()
	timers := append([]*fakeTimer(nil), c.timers...)
	c.mu.Unlock()
	for _, timer := range timers {
		timer.f()
	}
}

type fetchRecorder struct {
	mu      sync.Mutex
	queries []Query
	gates   map[string]chan struct{}
	errs    map[string]error
	ctxs    []context.Context
}

func newFetchRecorder() *fetchRecorder {
	return &fetchRecorder{gates: map[string]chan struct{}{}, errs: map[string]error{}}
}

// gate makes the fetch for text block until release is called.
func (f *fetchRecorder) gate(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gates[text] = make(chan struct{})
}

func (f *fetchRecorder) release(text string) {
	f.mu.Lock()
	gate := f.gates[text]
	f.mu.Unlock()
	close(gate)
}

func (f *fetchRecorder) fetch(ctx context.Context, query Query) ([]testRecord, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.ctxs = append(f.ctxs, ctx)
	gate := f.gates[query.Text]
	err := f.errs[query.Text]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return nil, err
	}
	return []testRecord{{ID: query.Text}}, nil
}

func (f *fetchRecorder) calls() []Query {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Query(nil), f.queries...)
}

func newTestSearcher(recorder *fetchRecorder, clock *manualClock) *Searcher[testRecord] {
	return New(context.Background(), recorder.fetch, Options{
		Name:      "test",
		Debounce:  300 * time.Millisecond,
		AfterFunc: clock.AfterFunc,
	}, zap.NewNop())
}

func TestSearcherDebounceIssuesLastInputOnce(t *testing.T) {
	recorder := newFetchRecorder()
	clock := &manualClock{}
	searcher := newTestSearcher(recorder, clock)
	defer searcher.Close()

	for _, text := range []string{"j", "ja", "jan", "jane"} {
		searcher.Input(Query{Text: text})
	}
	assert.True(t, searcher.Snapshot().Pending)
	assert.Empty(t, recorder.calls())

	clock.fireAll()
	searcher.Wait()

	assert.Equal(t, []Query{{Text: "jane"}}, recorder.calls())
	snapshot := searcher.Snapshot()
	assert.False(t, snapshot.Pending)
	assert.False(t, snapshot.Loading)
	assert.Equal(t, []testRecord{{ID: "jane"}}, snapshot.Records)
	assert.Equal(t, uint64(1), snapshot.Seq)
}

func TestSearcherIssueDropsPendingInput(t *testing.T) {
	recorder := newFetchRecorder()
	clock := &manualClock{}
	searcher := newTestSearcher(recorder, clock)
	defer searcher.Close()

	searcher.Input(Query{Text: "typed"})
	searcher.Issue(Query{Text: "explicit"})
	clock.fireAll()
	searcher.Wait()

	assert.Equal(t, []Query{{Text: "explicit"}}, recorder.calls())
}

func TestSearcherDiscardsStaleResponse(t *testing.T) {
	recorder := newFetchRecorder()
	recorder.gate("old")
	recorder.gate("new")
	searcher := newTestSearcher(recorder, &manualClock{})
	defer searcher.Close()

	assert.Equal(t, uint64(1), searcher.Issue(Query{Text: "old"}))
	assert.Equal(t, uint64(2), searcher.Issue(Query{Text: "new"}))
	assert.True(t, searcher.Snapshot().Loading)

	recorder.release("new")
	assert.Eventually(t, func() bool {
		return searcher.Snapshot().Seq == 2
	}, time.Second, 5*time.Millisecond)

	recorder.release("old")
	searcher.Wait()

	snapshot := searcher.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.Equal(t, []testRecord{{ID: "new"}}, snapshot.Records)
	assert.Equal(t, uint64(2), snapshot.Seq)
}

func TestSearcherFailureResolvesLoading(t *testing.T) {
	recorder := newFetchRecorder()
	searcher := newTestSearcher(recorder, &manualClock{})
	defer searcher.Close()

	searcher.Issue(Query{Text: "ok"})
	searcher.Wait()
	assert.Len(t, searcher.Snapshot().Records, 1)

	boom := errors.New("clinic api down")
	recorder.errs["broken"] = boom
	searcher.Issue(Query{Text: "broken"})
	searcher.Wait()

	snapshot := searcher.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.ErrorIs(t, snapshot.Err, boom)
	assert.Empty(t, snapshot.Records)

	searcher.Issue(Query{Text: "ok"})
	searcher.Wait()
	assert.NoError(t, searcher.Snapshot().Err)
}

func TestSearcherCloseStopsMutation(t *testing.T) {
	recorder := newFetchRecorder()
	recorder.gate("slow")
	clock := &manualClock{}
	searcher := newTestSearcher(recorder, clock)

	searcher.Issue(Query{Text: "slow"})
	searcher.Input(Query{Text: "later"})
	assert.Eventually(t, func() bool {
		return len(recorder.calls()) == 1
	}, time.Second, 5*time.Millisecond)

	searcher.Close()
	recorder.release("slow")
	clock.fireAll()
	searcher.Wait()

	recorder.mu.Lock()
	fetchCtx := recorder.ctxs[0]
	recorder.mu.Unlock()
	assert.ErrorIs(t, fetchCtx.Err(), context.Canceled)

	assert.Equal(t, []Query{{Text: "slow"}}, recorder.calls())
	assert.Empty(t, searcher.Snapshot().Records)
	assert.Equal(t, uint64(0), searcher.Issue(Query{Text: "after close"}))
}

func TestSearcherFind(t *testing.T) {
	recorder := newFetchRecorder()
	searcher := newTestSearcher(recorder, &manualClock{})
	defer searcher.Close()

	searcher.Issue(Query{Text: "AB12CD34"})
	searcher.Wait()

	record, ok := searcher.Find("AB12CD34")
	assert.True(t, ok)
	assert.Equal(t, "AB12CD34", record.ID)

	_, ok = searcher.Find("ZZ99YY88")
	assert.False(t, ok)
}

func TestSearcherKeepsParentValuesButNotCancellation(t *testing.T) {
	type ctxKey string
	parent, cancel := context.WithCancel(context.WithValue(context.Background(), ctxKey("token"), "abc"))
	cancel()

	recorder := newFetchRecorder()
	searcher := New(parent, recorder.fetch, Options{Name: "test"}, zap.NewNop())
	defer searcher.Close()

	searcher.Issue(Query{Text: "x"})
	searcher.Wait()

	recorder.mu.Lock()
	fetchCtx := recorder.ctxs[0]
	recorder.mu.Unlock()
	assert.Equal(t, "abc", fetchCtx.Value(ctxKey("token")))
	assert.NoError(t, fetchCtx.Err())
}
