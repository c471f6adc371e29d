package memorize

import "github.com/vovakirdan/tui-memorize/internal/core"

// MaxGuess is the largest count a player can enter for one figure.
const MaxGuess = 99

// Command changes a scorecard.
type Command interface {
	apply(s *Scorecard) bool
}

// Increment raises the guess for a figure by one.
type Increment struct{ Figure FigureType }

// Decrement lowers the guess for a figure by one.
type Decrement struct{ Figure FigureType }

// Submit locks the guesses in.
type Submit struct{}

func (c Increment) apply(s *Scorecard) bool { return s.adjust(c.Figure, 1) }

func (c Decrement) apply(s *Scorecard) bool { return s.adjust(c.Figure, -1) }

func (Submit) apply(s *Scorecard) bool {
	s.submitted = true
	return true
}

// Result compares one guess with the truth.
type Result struct {
	Figure   FigureType
	Expected int
	Guessed  int
	Correct  bool
}

// Diff returns how far off the guess was.
func (r Result) Diff() int {
	return core.Abs(r.Expected - r.Guessed)
}

// Scorecard collects the player's counts after a session.
type Scorecard struct {
	truth     *Counter
	guesses   map[FigureType]int
	submitted bool
}

// NewScorecard starts every guess at zero for the counted figures.
func NewScorecard(truth *Counter) *Scorecard {
	s := &Scorecard{truth: truth, guesses: make(map[FigureType]int)}
	for _, t := range truth.Types() {
		s.guesses[t] = 0
	}
	return s
}

// Handle applies a command and reports whether anything changed.
// Commands after Submit are ignored.
func (s *Scorecard) Handle(cmd Command) bool {
	if s.submitted {
		return false
	}
	return cmd.apply(s)
}

func (s *Scorecard) adjust(t FigureType, delta int) bool {
	cur, ok := s.guesses[t]
	if !ok {
		return false
	}
	next := core.Clamp(cur+delta, 0, MaxGuess)
	s.guesses[t] = next
	return next != cur
}

// Figures returns the figure types in display order.
func (s *Scorecard) Figures() []FigureType {
	return s.truth.Types()
}

// Guess returns the current guess for t.
func (s *Scorecard) Guess(t FigureType) int {
	return s.guesses[t]
}

// Submitted reports whether the guesses are locked in.
func (s *Scorecard) Submitted() bool {
	return s.submitted
}

// Results compares every guess with the truth.
func (s *Scorecard) Results() []Result {
	types := s.truth.Types()
	out := make([]Result, len(types))
	for i, t := range types {
		exp, got := s.truth.Get(t), s.guesses[t]
		out[i] = Result{Figure: t, Expected: exp, Guessed: got, Correct: exp == got}
	}
	return out
}

// Correct returns how many figures were counted exactly.
func (s *Scorecard) Correct() int {
	n := 0
	for _, r := range s.Results() {
		if r.Correct {
			n++
		}
	}
	return n
}

// Points scores the guesses: 100 per figure, minus 25 for every unit off,
// never below zero per figure.
func (s *Scorecard) Points() int {
	total := 0
	for _, r := range s.Results() {
		total += max(0, 100-25*r.Diff())
	}
	return total
}
