package batch

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock simulates elapsed time deterministically: every Sleep advances
// virtual time by exactly the requested duration.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func (c *fakeClock) totalSlept() time.Duration {
	var total time.Duration
	for _, d := range c.slept {
		total += d
	}
	return total
}

// httpErr is a test double for send errors carrying an HTTP status.
type httpErr struct {
	status     int
	body       string
	retryAfter time.Duration
}

func (e *httpErr) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.status, e.body)
}

func (e *httpErr) HTTPStatus() int { return e.status }

func (e *httpErr) RetryAfterHint() (time.Duration, bool) {
	return e.retryAfter, e.retryAfter > 0
}

func TestRunEmptyInput(t *testing.T) {
	clock := newFakeClock()
	s := NewSubmitter(func(RoomRequest) (string, error) {
		t.Fatal("send must not be called for an empty batch")
		return "", nil
	}, Config{}, clock)

	results := s.Run(nil)

	assert.Empty(t, results)
	assert.Empty(t, clock.slept, "empty batch must not sleep")
}

func TestRunPreservesOrderAndLength(t *testing.T) {
	requests := []RoomRequest{
		{LocationID: 123, Name: "Room A"},
		{LocationID: 456, Name: "Room B"},
		{LocationID: 789, Name: "Room C"},
	}
	codes := map[string]string{"Room A": "AAA111", "Room B": "BBB222", "Room C": "CCC333"}

	s := NewSubmitter(func(req RoomRequest) (string, error) {
		return codes[req.Name], nil
	}, Config{}, newFakeClock())

	results := s.Run(requests)

	require.Len(t, results, len(requests))
	for i, res := range results {
		assert.Equal(t, requests[i], res.Request, "row %d out of order", i)
		assert.True(t, res.Succeeded())
		assert.Equal(t, codes[requests[i].Name], res.Code)
	}
}

func TestRunEndToEndScenario(t *testing.T) {
	// Input [(123,"Room A"), (456,"Room B")] with codes AAA111 then BBB222.
	var sent []RoomRequest
	next := []string{"AAA111", "BBB222"}

	s := NewSubmitter(func(req RoomRequest) (string, error) {
		sent = append(sent, req)
		return next[len(sent)-1], nil
	}, Config{}, newFakeClock())

	results := s.Run([]RoomRequest{
		{LocationID: 123, Name: "Room A"},
		{LocationID: 456, Name: "Room B"},
	})

	require.Len(t, results, 2)
	assert.Equal(t, "AAA111", results[0].Code)
	assert.Equal(t, "BBB222", results[1].Code)
	assert.Equal(t, []RoomRequest{{123, "Room A"}, {456, "Room B"}}, sent)
}

func TestPacingWithinBudgetDoesNotSleep(t *testing.T) {
	clock := newFakeClock()
	s := NewSubmitter(func(RoomRequest) (string, error) {
		return "DEC", nil
	}, Config{RequestsPerSecond: 10}, clock)

	requests := make([]RoomRequest, 10)
	for i := range requests {
		requests[i] = RoomRequest{LocationID: i + 1, Name: fmt.Sprintf("Room %d", i)}
	}
	s.Run(requests)

	assert.Empty(t, clock.slept, "first 10 requests at cap 10 must not be throttled")
}

func TestPacingThrottlesBeyondBudget(t *testing.T) {
	clock := newFakeClock()
	s := NewSubmitter(func(RoomRequest) (string, error) {
		return "DEC", nil
	}, Config{RequestsPerSecond: 10}, clock)

	requests := make([]RoomRequest, 12)
	for i := range requests {
		requests[i] = RoomRequest{LocationID: i + 1, Name: fmt.Sprintf("Room %d", i)}
	}
	start := clock.Now()
	results := s.Run(requests)

	require.Len(t, results, 12)
	elapsed := clock.Now().Sub(start)
	assert.GreaterOrEqual(t, elapsed, time.Second,
		"12 requests at cap 10 must take at least ~1s of window time")
	assert.Less(t, elapsed, 3*time.Second,
		"pacing must not throttle beyond what the window requires")
}

func TestRateLimitedRetriedUntilExhausted(t *testing.T) {
	clock := newFakeClock()
	attempts := 0
	s := NewSubmitter(func(RoomRequest) (string, error) {
		attempts++
		return "", &httpErr{status: 429, body: "slow down"}
	}, Config{MaxAttempts: 5}, clock)

	results := s.Run([]RoomRequest{{LocationID: 1, Name: "Room A"}})

	require.Len(t, results, 1)
	assert.Equal(t, 5, attempts, "429 must be retried exactly up to the attempt cap")
	assert.False(t, results[0].Succeeded())
	assert.Contains(t, results[0].Reason, "retries exhausted")

	// Four backoff sleeps of the 1s fallback between the five attempts.
	backoffs := 0
	for _, d := range clock.slept {
		if d == DefaultRetryWait {
			backoffs++
		}
	}
	assert.GreaterOrEqual(t, backoffs, 4)
}

func TestRateLimitedHonorsRetryAfter(t *testing.T) {
	clock := newFakeClock()
	attempts := 0
	s := NewSubmitter(func(RoomRequest) (string, error) {
		attempts++
		if attempts < 3 {
			return "", &httpErr{status: 429, body: "slow down", retryAfter: 3 * time.Second}
		}
		return "DEC999", nil
	}, Config{MaxAttempts: 5}, clock)

	results := s.Run([]RoomRequest{{LocationID: 1, Name: "Room A"}})

	require.Len(t, results, 1)
	assert.True(t, results[0].Succeeded())
	assert.Equal(t, "DEC999", results[0].Code)
	assert.Contains(t, clock.slept, 3*time.Second, "Retry-After hint must be honored")
}

func TestBadRequestIsTerminalAfterOneAttempt(t *testing.T) {
	attempts := 0
	s := NewSubmitter(func(RoomRequest) (string, error) {
		attempts++
		return "", &httpErr{status: 400, body: "preconditions not met"}
	}, Config{MaxAttempts: 5}, newFakeClock())

	results := s.Run([]RoomRequest{{LocationID: 999, Name: "Room A"}})

	require.Len(t, results, 1)
	assert.Equal(t, 1, attempts, "4xx other than 429 must not be retried")
	assert.Contains(t, results[0].Reason, "preconditions not met")
}

func TestTransportErrorIsTerminal(t *testing.T) {
	attempts := 0
	s := NewSubmitter(func(RoomRequest) (string, error) {
		attempts++
		return "", errors.New("dial tcp: connection refused")
	}, Config{MaxAttempts: 5}, newFakeClock())

	results := s.Run([]RoomRequest{{LocationID: 1, Name: "Room A"}})

	require.Len(t, results, 1)
	assert.Equal(t, 1, attempts, "transport errors are not retried")
	assert.Contains(t, results[0].Reason, "network error:")
	assert.Contains(t, results[0].Reason, "connection refused")
}

func TestFailureDoesNotAbortBatch(t *testing.T) {
	s := NewSubmitter(func(req RoomRequest) (string, error) {
		if req.LocationID == 2 {
			return "", &httpErr{status: 400, body: "bad location"}
		}
		return fmt.Sprintf("DEC%d", req.LocationID), nil
	}, Config{}, newFakeClock())

	results := s.Run([]RoomRequest{
		{LocationID: 1, Name: "Room A"},
		{LocationID: 2, Name: "Room B"},
		{LocationID: 3, Name: "Room C"},
	})

	require.Len(t, results, 3)
	assert.True(t, results[0].Succeeded())
	assert.False(t, results[1].Succeeded())
	assert.True(t, results[2].Succeeded(), "rows after a failure must still be attempted")
}

func TestProgressCallback(t *testing.T) {
	var seen []int
	s := NewSubmitter(func(RoomRequest) (string, error) {
		return "DEC", nil
	}, Config{}, newFakeClock())
	s.OnProgress(func(done, total int, res RoomResult) {
		assert.Equal(t, 3, total)
		seen = append(seen, done)
	})

	s.Run(make([]RoomRequest, 3))

	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestRateBudgetSlidingWindow(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newRateBudget(2)

	assert.Zero(t, b.waitNeeded(base))
	b.record(base)
	assert.Zero(t, b.waitNeeded(base.Add(100*time.Millisecond)))
	b.record(base.Add(100 * time.Millisecond))

	// Window full: the third attempt must wait until the oldest ages out.
	wait := b.waitNeeded(base.Add(200 * time.Millisecond))
	assert.Equal(t, 800*time.Millisecond, wait)

	// After the oldest entry leaves the window the budget frees up.
	assert.Zero(t, b.waitNeeded(base.Add(1100*time.Millisecond)))
}
