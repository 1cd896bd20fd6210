package stats

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/aybabtme/uniplot/histogram"
	"gopkg.in/yaml.v3"
)

// Result is the outcome of one autoplayed deal.
type Result struct {
	DealID     string
	Seed       string
	Won        bool
	Foundation int
	Moves      int
	Rounds     int
}

// Tally accumulates results from many goroutines.
type Tally struct {
	mu         sync.Mutex
	wins       int
	foundation Statistic
	moves      Statistic
	rounds     Statistic
	// kept for the histogram
	foundationCounts []float64
}

func (t *Tally) Add(r Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r.Won {
		t.wins++
	}
	t.foundation.Push(float64(r.Foundation))
	t.moves.Push(float64(r.Moves))
	t.rounds.Push(float64(r.Rounds))
	t.foundationCounts = append(t.foundationCounts, float64(r.Foundation))
}

func (t *Tally) Games() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.foundation.Iterations()
}

func (t *Tally) Wins() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.wins
}

func (t *Tally) WinRate() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.winRate()
}

func (t *Tally) winRate() float64 {
	n := t.foundation.Iterations()
	if n == 0 {
		return 0
	}
	return float64(t.wins) / float64(n)
}

// WinRateCI returns the normal-approximation confidence interval of the win
// rate at the given confidence level (in percent), clamped to [0, 1].
func (t *Tally) WinRateCI(confidence float64) (float64, float64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.foundation.Iterations()
	if n == 0 {
		return 0, 0
	}
	p := t.winRate()
	half := ZVal(confidence) * math.Sqrt(p*(1-p)/float64(n))
	return math.Max(0, p-half), math.Min(1, p+half)
}

func (t *Tally) FoundationMean() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.foundation.Mean()
}

func (t *Tally) MovesMean() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.moves.Mean()
}

// Histogram prints the distribution of final foundation counts.
func (t *Tally) Histogram(w io.Writer, bins int) error {
	t.mu.Lock()
	counts := append([]float64(nil), t.foundationCounts...)
	t.mu.Unlock()
	if len(counts) == 0 {
		return nil
	}
	h := histogram.Hist(bins, counts)
	return histogram.Fprint(w, h, histogram.Linear(40))
}

// Summary is a short human-readable report of the batch.
func (t *Tally) Summary() string {
	lo95, hi95 := t.WinRateCI(95)
	t.mu.Lock()
	defer t.mu.Unlock()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Games played: %d\n", t.foundation.Iterations())
	fmt.Fprintf(&sb, "Wins: %d (%.2f%%, 95%% CI %.2f%% - %.2f%%)\n",
		t.wins, 100*t.winRate(), 100*lo95, 100*hi95)
	fmt.Fprintf(&sb, "Foundation cards: mean %.2f stdev %.2f (min %.0f max %.0f)\n",
		t.foundation.Mean(), t.foundation.Stdev(), t.foundation.Min(), t.foundation.Max())
	fmt.Fprintf(&sb, "Moves: mean %.2f stdev %.2f\n", t.moves.Mean(), t.moves.Stdev())
	fmt.Fprintf(&sb, "Rounds: mean %.2f stdev %.2f\n", t.rounds.Mean(), t.rounds.Stdev())
	return sb.String()
}

// Report is the machine-readable form of Summary.
type Report struct {
	Games          int     `yaml:"games"`
	Wins           int     `yaml:"wins"`
	WinRate        float64 `yaml:"win_rate"`
	WinRateLow     float64 `yaml:"win_rate_low"`
	WinRateHigh    float64 `yaml:"win_rate_high"`
	FoundationMean float64 `yaml:"foundation_mean"`
	FoundationMax  float64 `yaml:"foundation_max"`
	MovesMean      float64 `yaml:"moves_mean"`
	RoundsMean     float64 `yaml:"rounds_mean"`
}

func (t *Tally) Report() Report {
	lo95, hi95 := t.WinRateCI(95)
	t.mu.Lock()
	defer t.mu.Unlock()
	return Report{
		Games:          t.foundation.Iterations(),
		Wins:           t.wins,
		WinRate:        t.winRate(),
		WinRateLow:     lo95,
		WinRateHigh:    hi95,
		FoundationMean: t.foundation.Mean(),
		FoundationMax:  t.foundation.Max(),
		MovesMean:      t.moves.Mean(),
		RoundsMean:     t.rounds.Mean(),
	}
}

// WriteYAML writes the batch report as YAML.
func (t *Tally) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(t.Report())
}
