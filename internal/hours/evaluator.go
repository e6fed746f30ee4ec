package hours

import (
	"fmt"
	"time"

	"github.com/aanand-mishra/motoportal-api/internal/config"
	"github.com/aanand-mishra/motoportal-api/internal/types"
)

// Evaluator binds per-kind policies to a timezone and a clock so callers can
// ask about a listing without assembling the inputs themselves.
type Evaluator struct {
	policies map[types.Kind]Policy
	loc      *time.Location
	now      func() time.Time
}

// NewEvaluator returns an Evaluator. Kinds missing from policies use
// DefaultPolicy; a nil loc means time.Local and a nil now means time.Now.
func NewEvaluator(policies map[types.Kind]Policy, loc *time.Location, now func() time.Time) *Evaluator {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	p := make(map[types.Kind]Policy, len(policies))
	for k, v := range policies {
		p[k] = v
	}
	return &Evaluator{policies: p, loc: loc, now: now}
}

// FromConfig builds an Evaluator from the hours section of the config.
func FromConfig(cfg config.Hours, now func() time.Time) (*Evaluator, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	policies := make(map[types.Kind]Policy, 3)
	for kind, kh := range map[types.Kind]config.KindHours{
		types.KindSchool:  cfg.School,
		types.KindService: cfg.Service,
		types.KindShop:    cfg.Shop,
	} {
		p, err := policyFrom(DefaultPolicy(kind), kh)
		if err != nil {
			return nil, fmt.Errorf("hours: %s: %w", kind, err)
		}
		p.GateMinutePairs = cfg.GateMinutePairs
		policies[kind] = p
	}

	return NewEvaluator(policies, loc, now), nil
}

func policyFrom(base Policy, kh config.KindHours) (Policy, error) {
	if len(kh.Workdays) > 0 {
		var w Weekdays
		for _, d := range kh.Workdays {
			if d < 0 || d > 6 {
				return Policy{}, fmt.Errorf("workday %d out of range 0..6", d)
			}
			w |= NewWeekdays(time.Weekday(d))
		}
		base.Workdays = w
	}
	if kh.Default != "" {
		r, ok := ParseRange(kh.Default)
		if !ok {
			return Policy{}, fmt.Errorf("default range %q is not HH:MM-HH:MM", kh.Default)
		}
		base.Default = r
	}
	return base, nil
}

// Policy returns the policy used for kind.
func (e *Evaluator) Policy(kind types.Kind) Policy {
	if p, ok := e.policies[kind]; ok {
		return p
	}
	return DefaultPolicy(kind)
}

// Now returns the current time in the evaluator's timezone.
func (e *Evaluator) Now() time.Time {
	return e.now().In(e.loc)
}

// Location returns the evaluator's timezone.
func (e *Evaluator) Location() *time.Location {
	return e.loc
}

// Status evaluates l at the current time.
func (e *Evaluator) Status(l types.Listing) Status {
	return e.StatusAt(l, e.Now())
}

// StatusAt evaluates l at t, read on the evaluator's wall clock.
func (e *Evaluator) StatusAt(l types.Listing, t time.Time) Status {
	return Evaluate(l.Hours, e.Policy(l.Kind), t.In(e.loc))
}
