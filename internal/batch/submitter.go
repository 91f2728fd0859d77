// Package batch implements the rate-limited batch submitter that drives
// bulk room creation from CSV files.
//
// The submitter accepts an ordered sequence of room creation requests and a
// send function, and produces an ordered sequence of per-row outcomes. It
// enforces a maximum sustained request rate against the upstream API
// (documented limit: 15 requests/second per integration token; the default
// cap of 10/s stays safely below it) and transparently retries HTTP 429
// rejections with bounded backoff.
//
// SUBMISSION MODEL:
// Requests are issued strictly one at a time, in submission order, never in
// parallel. Parallel issuance would make the sliding-window rate check hard
// to reason about and risks bursting past the upstream limit. The only
// suspension points are the pacing wait before a send and the backoff wait
// after a 429; both go through the injected Clock.
//
// Per-request lifecycle: Pending -> (rate-limited -> Pending)* -> Succeeded
// or Failed, with the rate-limited self-loop bounded by the attempt cap.
// A row failure never aborts the batch; every row gets a terminal outcome.
package batch

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultRequestsPerSecond is the default sustained request cap.
	// The upstream API allows 15/s per token; 10/s leaves headroom for
	// clock skew and retried attempts.
	DefaultRequestsPerSecond = 10

	// DefaultMaxAttempts bounds the rate-limited retry loop per request.
	DefaultMaxAttempts = 5

	// DefaultRetryWait is the backoff applied after a 429 response that
	// carries no usable Retry-After header.
	DefaultRetryWait = 1 * time.Second
)

// RoomRequest is one room to create, parsed from a single CSV data row.
// LocationID has already been validated as an integer by the CSV layer;
// rows that fail validation never reach the submitter.
type RoomRequest struct {
	LocationID int
	Name       string
}

// RoomResult is the terminal outcome for one request. Results are appended
// in the same order requests were submitted, so they map 1:1 back to CSV
// rows when rewriting the file.
type RoomResult struct {
	Request RoomRequest
	Code    string // device enrollment code (DEC) on success
	Reason  string // failure reason; empty on success
}

// Succeeded reports whether the request reached a successful terminal state.
func (r RoomResult) Succeeded() bool {
	return r.Reason == ""
}

// SendFunc submits one room creation request and returns the enrollment
// code, or an error describing the failure. Errors implementing StatusError
// are classified by HTTP status; any other error is treated as a transport
// failure.
type SendFunc func(req RoomRequest) (string, error)

// StatusError is implemented by send errors that carry an HTTP status,
// letting the submitter distinguish rate limiting from terminal rejections
// without depending on the HTTP client package.
type StatusError interface {
	error
	HTTPStatus() int
}

// RetryHinter is optionally implemented by rate-limit errors that carry a
// server-provided Retry-After backoff hint.
type RetryHinter interface {
	RetryAfterHint() (time.Duration, bool)
}

// ProgressFunc is invoked after each request reaches a terminal state.
// done counts terminal results so far; total is the batch size.
type ProgressFunc func(done, total int, result RoomResult)

// Config holds submitter tuning. Zero values select the defaults.
type Config struct {
	RequestsPerSecond int           // sustained cap on request attempts per second
	MaxAttempts       int           // total attempts per request, including the first
	RetryWait         time.Duration // fallback backoff after 429 without Retry-After
}

// withDefaults fills unset fields.
func (c Config) withDefaults() Config {
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = DefaultRequestsPerSecond
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.RetryWait <= 0 {
		c.RetryWait = DefaultRetryWait
	}
	return c
}

// rateBudget tracks the timestamps of the last N issued attempts, where N
// is the per-second cap. The window slides: entries older than one second
// fall out as new attempts are recorded, with no explicit reset.
type rateBudget struct {
	cap    int
	issued []time.Time // oldest first, at most cap entries
}

func newRateBudget(cap int) *rateBudget {
	return &rateBudget{cap: cap, issued: make([]time.Time, 0, cap)}
}

// waitNeeded returns how long issuing must be delayed so that the trailing
// one-second window stays within budget. Zero means issue immediately.
func (b *rateBudget) waitNeeded(now time.Time) time.Duration {
	b.evict(now)
	if len(b.issued) < b.cap {
		return 0
	}
	// Window is full: wait until the oldest entry ages out.
	wait := time.Second - now.Sub(b.issued[0])
	if wait < 0 {
		return 0
	}
	return wait
}

// record notes that an attempt was issued at the given time. Retried
// attempts consume budget exactly like first attempts.
func (b *rateBudget) record(now time.Time) {
	b.evict(now)
	b.issued = append(b.issued, now)
	if len(b.issued) > b.cap {
		b.issued = b.issued[1:]
	}
}

// evict drops timestamps that have left the trailing one-second window.
func (b *rateBudget) evict(now time.Time) {
	cutoff := now.Add(-time.Second)
	i := 0
	for i < len(b.issued) && !b.issued[i].After(cutoff) {
		i++
	}
	if i > 0 {
		b.issued = b.issued[i:]
	}
}

// Submitter issues an ordered sequence of room creation requests through a
// send function, pacing attempts against a sliding-window rate budget and
// retrying rate-limit rejections up to a bounded attempt count.
//
// The rate budget is owned exclusively by the submitter and discarded with
// it; state never leaks across batches. Not safe for concurrent use - the
// tool processes one CSV file at a time, sequentially.
type Submitter struct {
	send     SendFunc
	cfg      Config
	clock    Clock
	budget   *rateBudget
	progress ProgressFunc
}

// NewSubmitter creates a submitter for one batch. A nil clock selects the
// wall clock; a nil progress callback disables progress reporting.
func NewSubmitter(send SendFunc, cfg Config, clock Clock) *Submitter {
	if clock == nil {
		clock = RealClock()
	}
	cfg = cfg.withDefaults()
	return &Submitter{
		send:   send,
		cfg:    cfg,
		clock:  clock,
		budget: newRateBudget(cfg.RequestsPerSecond),
	}
}

// OnProgress registers a callback invoked after each terminal result.
func (s *Submitter) OnProgress(fn ProgressFunc) {
	s.progress = fn
}

// Run submits every request in order and returns one result per request,
// in the same order. An empty input yields an empty result slice. A row
// failure is recorded and processing continues with the next row.
func (s *Submitter) Run(requests []RoomRequest) []RoomResult {
	results := make([]RoomResult, 0, len(requests))
	for _, req := range requests {
		res := s.submitOne(req)
		results = append(results, res)
		if s.progress != nil {
			s.progress(len(results), len(requests), res)
		}
	}
	return results
}

// submitOne drives a single request to a terminal state: pace, send,
// classify, and either return or back off and retry. The loop is bounded
// by the attempt cap so a permanently rate-limited request ends in an
// explicit retries-exhausted failure rather than spinning forever.
func (s *Submitter) submitOne(req RoomRequest) RoomResult {
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		s.pace()

		code, err := s.send(req)
		s.budget.record(s.clock.Now())

		if err == nil {
			return RoomResult{Request: req, Code: code}
		}

		var se StatusError
		if !errors.As(err, &se) {
			// Transport failure: terminal, not retried.
			return RoomResult{Request: req, Reason: fmt.Sprintf("network error: %v", err)}
		}

		if se.HTTPStatus() != 429 {
			// Request-content problem (e.g. 400 when the location does
			// not exist). Retrying cannot fix it.
			return RoomResult{Request: req, Reason: se.Error()}
		}

		if attempt == s.cfg.MaxAttempts {
			break
		}
		s.clock.Sleep(s.backoff(err))
	}

	return RoomResult{
		Request: req,
		Reason:  fmt.Sprintf("rate limited, retries exhausted after %d attempts", s.cfg.MaxAttempts),
	}
}

// pace blocks until issuing one more attempt fits the trailing one-second
// window. Sleeps for the precise remaining interval rather than polling.
func (s *Submitter) pace() {
	if wait := s.budget.waitNeeded(s.clock.Now()); wait > 0 {
		s.clock.Sleep(wait)
	}
}

// backoff returns the wait before retrying a rate-limited request: the
// server's Retry-After hint when present, else the configured fallback.
func (s *Submitter) backoff(err error) time.Duration {
	var rh RetryHinter
	if errors.As(err, &rh) {
		if d, ok := rh.RetryAfterHint(); ok && d > 0 {
			return d
		}
	}
	return s.cfg.RetryWait
}
