package chain

import (
	"context"
	"math/rand"

	"github.com/mggg/gerrychain-go/assignment"
	"github.com/mggg/gerrychain-go/constraint"
	"github.com/mggg/gerrychain-go/partition"
)

// ProposalFunc proposes one flip given the current partition.
type ProposalFunc func(p *partition.Partition, rng *rand.Rand) (assignment.Flip, error)

// AcceptFunc decides whether to move to candidate, given the current
// partition and the step index. Both accept.AlwaysAccept and
// accept.MetropolisHastings satisfy this.
type AcceptFunc func(candidate, current *partition.Partition, step int) bool

// State is a MarkovChain's lifecycle state.
type State int

const (
	Ready State = iota
	Running
	Done
	Failed
)

// Option configures a MarkovChain at construction time.
type Option func(*MarkovChain)

// WithMaxRejections overrides the default rejection budget (1e6) a
// single step may spend retrying a constraint-Fail before giving up.
func WithMaxRejections(n int) Option {
	return func(c *MarkovChain) { c.maxRejections = n }
}

// WithSeed overrides the chain's own RNG seed (default: derived from
// the zero value, i.e. deterministic but unremarkable — callers wanting
// real entropy should seed explicitly).
func WithSeed(seed int64) Option {
	return func(c *MarkovChain) { c.rng = rand.New(rand.NewSource(seed)) }
}

// OnWarning, if set, receives one string per rejected proposal during a
// step: a proposal error, a degenerate flip, a constraint failure, or an
// acceptance rejection.
func OnWarning(fn func(string)) Option {
	return func(c *MarkovChain) { c.onWarning = fn }
}

// MarkovChain drives the proposal/constraint/accept loop described by
// spec 4.8.
type MarkovChain struct {
	proposal    ProposalFunc
	constraints *constraint.Validator
	accept      AcceptFunc

	current *partition.Partition
	step    int
	total   int
	state   State

	maxRejections int
	rng           *rand.Rand
	onWarning     func(string)
	warnings      chan string
}

// WithWarningsChannel allocates a buffered channel of the given size
// that every rejection reason is also sent to (non-blocking: a full
// channel silently drops the warning rather than stalling the chain),
// for callers who'd rather drain a channel than register a callback.
// Retrieve it with Warnings() once the chain is built.
func WithWarningsChannel(buffer int) Option {
	return func(c *MarkovChain) { c.warnings = make(chan string, buffer) }
}

// Warnings returns the channel configured by WithWarningsChannel, or nil
// if that option wasn't used.
func (c *MarkovChain) Warnings() <-chan string { return c.warnings }

// New builds a chain ready to run from initial for totalSteps emitted
// steps (an acceptance rejection re-emits the current partition and
// still counts as a step). initial must already pass constraints, or New fails with
// ErrInvalidInitialState.
func New(proposal ProposalFunc, constraints *constraint.Validator, accept AcceptFunc, initial *partition.Partition, totalSteps int, opts ...Option) (*MarkovChain, error) {
	if outcome, _ := constraints.Check(initial); outcome == constraint.Fail {
		return nil, ErrInvalidInitialState
	}
	c := &MarkovChain{
		proposal:      proposal,
		constraints:   constraints,
		accept:        accept,
		current:       initial,
		total:         totalSteps,
		state:         Ready,
		maxRejections: 1000000,
		rng:           rand.New(rand.NewSource(0)),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// State reports the chain's current lifecycle state.
func (c *MarkovChain) State() State { return c.state }

// Step reports how many steps have been emitted so far, whether the
// candidate was accepted or the current partition was re-emitted.
func (c *MarkovChain) Step() int { return c.step }

// Next advances the chain by one step, retrying constraint-Fail
// candidates (bounded by MaxRejections, not counted toward totalSteps)
// until one passes the Validator. Once a candidate passes, acceptance
// decides the emitted state: if accepted, current becomes candidate; if
// not, current is re-emitted unchanged. Either way the step counter
// advances — only constraint-invalid candidates are retried without
// counting. Next also returns early if the context is cancelled or the
// rejection budget is exhausted. The second return value is false
// exactly when the chain is done (totalSteps reached) or has failed —
// mirroring a generator's exhausted/None signal.
func (c *MarkovChain) Next(ctx context.Context) (*partition.Partition, bool, error) {
	if c.state == Done {
		return nil, false, nil
	}
	if c.state == Failed {
		return nil, false, ErrChainFailed
	}
	if c.step >= c.total {
		c.state = Done
		return nil, false, nil
	}
	c.state = Running

	rejections := 0
	for {
		select {
		case <-ctx.Done():
			c.state = Done
			return nil, false, ctx.Err()
		default:
		}

		flip, err := c.proposal(c.current, c.rng)
		if err != nil {
			rejections++
			c.warn("proposal error: " + err.Error())
			if rejections >= c.maxRejections {
				c.state = Failed
				return nil, false, ErrRejectionExhausted
			}
			continue
		}

		candidate, err := c.current.Flip(flip)
		if err != nil {
			rejections++
			c.warn("degenerate flip rejected: " + err.Error())
			if rejections >= c.maxRejections {
				c.state = Failed
				return nil, false, ErrRejectionExhausted
			}
			continue
		}

		outcome, reason := c.constraints.Check(candidate)
		if outcome == constraint.Fail {
			rejections++
			c.warn("constraint rejected: " + reason)
			if rejections >= c.maxRejections {
				c.state = Failed
				return nil, false, ErrRejectionExhausted
			}
			continue
		}

		if !c.accept(candidate, c.current, c.step) {
			c.warn("acceptance rejected candidate")
			c.step++
			if c.step >= c.total {
				c.state = Done
			} else {
				c.state = Running
			}
			return c.current, true, nil
		}

		c.current = candidate
		c.step++
		if c.step >= c.total {
			c.state = Done
		} else {
			c.state = Running
		}
		return c.current, true, nil
	}
}

func (c *MarkovChain) warn(msg string) {
	if c.onWarning != nil {
		c.onWarning(msg)
	}
	if c.warnings != nil {
		select {
		case c.warnings <- msg:
		default:
		}
	}
}
