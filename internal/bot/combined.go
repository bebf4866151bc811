package bot

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/freeeve/lightcycle/internal/pool"
	"github.com/freeeve/lightcycle/pkg/tron"
)

// DefaultMaxWait is how long a decision waits for heuristic results before
// settling for a partial merge.
const DefaultMaxWait = 1750 * time.Millisecond

// WeightedStrategy pairs a heuristic with its vote weight. The set handed
// to NewCombinedStrategy is fixed for the combined strategy's lifetime.
type WeightedStrategy struct {
	Strategy tron.Strategy
	Weight   float64
}

// CombinedOption configures a CombinedStrategy.
type CombinedOption func(*CombinedStrategy)

// WithMaxWait sets the per-decision wait bound.
func WithMaxWait(d time.Duration) CombinedOption {
	return func(cs *CombinedStrategy) {
		cs.maxWait = d
	}
}

// WithPool makes the combined strategy share an externally owned worker
// pool instead of creating its own. The caller keeps responsibility for
// shutting the pool down.
func WithPool(p *pool.Pool) CombinedOption {
	return func(cs *CombinedStrategy) {
		cs.pool = p
		cs.ownsPool = false
	}
}

// CombinedStrategy fans one job per weighted heuristic out to a worker
// pool and merges the normalized results by weight, bounded by a timeout.
//
// Calculate is single flight: at most one call may be in progress on an
// instance at a time. Cycles own their combined strategy, and a cycle
// decides once per turn, so the constraint holds by construction.
type CombinedStrategy struct {
	strategies []WeightedStrategy
	pool       *pool.Pool
	ownsPool   bool
	maxWait    time.Duration
}

// NewCombinedStrategy builds a combined strategy over the given weighted
// set. Unless WithPool is used, it starts a pool with one worker per
// heuristic so all jobs for a decision can run in parallel.
func NewCombinedStrategy(strategies []WeightedStrategy, opts ...CombinedOption) *CombinedStrategy {
	cs := &CombinedStrategy{
		strategies: strategies,
		maxWait:    DefaultMaxWait,
		ownsPool:   true,
	}
	for _, o := range opts {
		o(cs)
	}
	if cs.pool == nil {
		cs.pool = pool.New(len(strategies))
	}
	return cs
}

// Name implements tron.Strategy.
func (cs *CombinedStrategy) Name() string { return "combined" }

// Close shuts down the owned worker pool. A shared pool is left running.
func (cs *CombinedStrategy) Close() {
	if cs.ownsPool {
		cs.pool.Shutdown()
	}
}

// Calculate submits one job per weighted heuristic and merges their
// weighted, normalized score maps by summation. It returns as soon as
// every heuristic has reported, or after the wait bound elapses with
// whatever has arrived by then. A partial merge is an intended outcome,
// not an error; merge order doesn't matter, arrival time does.
func (cs *CombinedStrategy) Calculate(pos tron.Coordinates, b *tron.Board) tron.ScoreMap {
	// Each call owns a fresh buffered channel sized for every report, so
	// a heuristic finishing after the deadline parks its result in an
	// abandoned buffer instead of leaking into a later decision.
	results := make(chan tron.ScoreMap, len(cs.strategies))

	for _, ws := range cs.strategies {
		job := &strategyJob{
			strategy: ws.Strategy,
			weight:   ws.Weight,
			pos:      pos,
			board:    b,
			out:      results,
		}
		cs.pool.Submit(job.run)
	}

	timer := time.NewTimer(cs.maxWait)
	defer timer.Stop()

	merged := make(tron.ScoreMap, len(tron.ScanOrder))
	for pending := len(cs.strategies); pending > 0; pending-- {
		select {
		case contribution := <-results:
			for d, v := range contribution {
				merged[d] += v
			}
		case <-timer.C:
			log.Debug().
				Int("missing", pending).
				Dur("maxWait", cs.maxWait).
				Msg("Decision timed out, returning partial result")
			return merged
		}
	}
	return merged
}

// strategyJob binds one heuristic run to its decision context. It executes
// on a pool worker and must not touch shared board state.
type strategyJob struct {
	strategy tron.Strategy
	weight   float64
	pos      tron.Coordinates
	board    *tron.Board
	out      chan<- tron.ScoreMap
}

// run invokes the heuristic, normalizes its scores to sum to 1, applies
// the weight, and reports the contribution. A panicking heuristic is
// logged and reported as a zero contribution so the decision never hangs
// on a faulty strategy.
func (j *strategyJob) run() {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Str("strategy", j.strategy.Name()).
				Any("panic", r).
				Msg("Strategy panicked, counting it as a zero contribution")
			j.out <- tron.ScoreMap{}
		}
	}()

	scores := j.strategy.Calculate(j.pos, j.board)
	scores.Normalize()

	contribution := make(tron.ScoreMap, len(scores))
	for d, v := range scores {
		contribution[d] = v * j.weight
	}
	j.out <- contribution
}
