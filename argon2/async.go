package argon2

import (
	"context"
	"runtime"
	"time"
)

// DefaultAsyncTick is the cooperative yield budget used when HashAsync
// is called with asyncTick <= 0.
const DefaultAsyncTick = 10 * time.Millisecond

// Result is delivered on the channel returned by HashAsync.
type Result struct {
	Key []byte
	Err error
}

// HashAsync is the cooperative Argon2 entry point (section 4.8 / 5): it
// runs the fill loop on its own goroutine and yields control back to the
// Go scheduler at each produced block whenever the elapsed time since the
// last yield falls outside [0, asyncTick). That is the idiomatic Go
// realization of "yields control to a host scheduler" -- an ordinary
// goroutine plus context.Context cancellation stand in for the bespoke
// continuation struct the spec's design notes allow, since cancelling
// ctx is exactly "the host declines to resume". asyncTick <= 0 uses
// DefaultAsyncTick. A non-monotonic clock reading (elapsed < 0) always
// triggers a yield.
//
// The returned channel receives exactly one Result and is then closed.
// Cancelling ctx unwinds the fill loop and delivers ctx.Err(); the
// working matrix and the address/scratch buffers are zeroed on every
// exit path, including cancellation.
func HashAsync(ctx context.Context, variant Variant, password, salt []byte, opts Options, asyncTick time.Duration) (<-chan Result, error) {
	if asyncTick <= 0 {
		asyncTick = DefaultAsyncTick
	}

	// Fail synchronously, before a goroutine or the working matrix
	// exists, exactly like the blocking entry point.
	if _, err := normalize(variant, password, salt, opts); err != nil {
		return nil, err
	}

	ch := make(chan Result, 1)
	go func() {
		gate := tickGate{budget: asyncTick, last: time.Now()}
		yield := func() error {
			if err := ctxErr(ctx); err != nil {
				return err
			}
			if !gate.shouldYield() {
				return nil
			}
			runtime.Gosched()
			gate.reset()
			return ctxErr(ctx)
		}

		key, err := derive(variant, password, salt, opts, yield)
		ch <- Result{Key: key, Err: err}
		close(ch)
	}()
	return ch, nil
}

func ctxErr(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// tickGate implements the asyncTick decision point: yield whenever the
// elapsed time since the last reset falls outside [0, budget). A clock
// reading that appears to run backwards (elapsed < 0) is treated as
// "must yield", per section 4.8.
type tickGate struct {
	budget time.Duration
	last   time.Time
}

func (g *tickGate) shouldYield() bool {
	elapsed := time.Since(g.last)
	return elapsed < 0 || elapsed >= g.budget
}

func (g *tickGate) reset() {
	g.last = time.Now()
}
