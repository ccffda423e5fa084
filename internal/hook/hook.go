package hook

// #region imports
import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/danielpatrickdp/vibes-hook/internal/codec"
	"github.com/danielpatrickdp/vibes-hook/internal/inject"
	"github.com/danielpatrickdp/vibes-hook/internal/mood"
	"github.com/danielpatrickdp/vibes-hook/internal/state"
)

// #endregion

// #region runner

// Runner wires one hook invocation: envelope in, classification,
// injection decision, best-effort state write, envelope out.
type Runner struct {
	Store  state.Store
	Policy inject.Policy
	Rand   inject.Rand
	Logger *zap.Logger

	// now is swappable in tests; defaults to the wall clock.
	now func() time.Time
}

// NewRunner builds a Runner with the production clock.
func NewRunner(store state.Store, policy inject.Policy, rng inject.Rand, logger *zap.Logger) *Runner {
	return &Runner{
		Store:  store,
		Policy: policy,
		Rand:   rng,
		Logger: logger,
		now:    time.Now,
	}
}

// #endregion

// #region run

// Result reports what one invocation did, for logging and tests.
type Result struct {
	SessionID string
	Mood      mood.Mood
	Injected  bool
	Vibe      string
}

// Run processes one invocation. It never returns an error: every failure
// mode (malformed envelope, unwritable state) is absorbed, because a
// crashing hook breaks the host's interactive flow. Output is written to
// w only when injecting.
func (r *Runner) Run(in io.Reader, out io.Writer) Result {
	env := codec.DecodeInput(in)
	label := mood.Classify(env.Prompt)
	decision := r.Policy.Decide(label, r.Rand)

	res := Result{
		SessionID: env.SessionID,
		Mood:      label,
		Injected:  decision.Injected,
		Vibe:      decision.Vibe,
	}

	rec := state.MoodRecord{
		Mood:     string(label),
		Injected: decision.Injected,
		TS:       float64(r.now().UnixNano()) / float64(time.Second),
	}
	if decision.Injected {
		vibe := decision.Vibe
		rec.Vibe = &vibe
	}
	if r.Store != nil {
		if err := r.Store.Put(env.SessionID, rec); err != nil {
			// Best-effort: status-line cosmetics never block the hook.
			r.Logger.Debug("state write failed", zap.String("session", env.SessionID), zap.Error(err))
		}
	}

	if decision.Injected {
		if err := codec.EncodeOutput(out, decision.Vibe); err != nil {
			r.Logger.Debug("write output envelope failed", zap.Error(err))
		}
	}

	r.Logger.Debug("classified",
		zap.String("session", env.SessionID),
		zap.String("mood", string(label)),
		zap.Bool("injected", decision.Injected))

	return res
}

// #endregion
