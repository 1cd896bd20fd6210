package stats

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/matryer/is"
)

func TestRunningStat(t *testing.T) {
	is := is.New(t)
	type tc struct {
		scores []int
		mean   float64
		stdev  float64
	}
	cases := []tc{
		{[]int{10, 12, 23, 23, 16, 23, 21, 16}, 18, 5.2372293656638},
		{[]int{14, 35, 71, 124, 10, 24, 55, 33, 87, 19}, 47.2, 36.937785531891},
		{[]int{1}, 1, 0},
		{[]int{}, 0, 0},
		{[]int{1, 1}, 1, 0},
	}
	for _, c := range cases {
		s := &Statistic{}
		for _, score := range c.scores {
			s.Push(float64(score))
		}
		is.True(FuzzyEqual(s.Mean(), c.mean))
		is.True(FuzzyEqual(s.Stdev(), c.stdev))
	}
}

func TestMinMax(t *testing.T) {
	is := is.New(t)
	s := &Statistic{}
	for _, v := range []float64{7, 3, 52, 10} {
		s.Push(v)
	}
	is.Equal(s.Min(), 3.0)
	is.Equal(s.Max(), 52.0)
	is.Equal(s.Last(), 10.0)
}

func TestZVal(t *testing.T) {
	is := is.New(t)
	is.True(FuzzyEqual(ZVal(95), 1.959963984540054))
}

func TestTally(t *testing.T) {
	is := is.New(t)
	tally := &Tally{}
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			won := i%4 == 0
			f := 10
			if won {
				f = 52
			}
			tally.Add(Result{Won: won, Foundation: f, Moves: 100, Rounds: 20})
		}(i)
	}
	wg.Wait()

	is.Equal(tally.Games(), 100)
	is.Equal(tally.Wins(), 25)
	is.True(FuzzyEqual(tally.WinRate(), 0.25))
	is.True(FuzzyEqual(tally.FoundationMean(), 20.5))
	is.True(FuzzyEqual(tally.MovesMean(), 100))

	lo, hi := tally.WinRateCI(95)
	is.True(lo < 0.25 && hi > 0.25)
	is.True(lo > 0.1 && hi < 0.4)

	is.True(strings.Contains(tally.Summary(), "Wins: 25"))

	var buf bytes.Buffer
	is.NoErr(tally.Histogram(&buf, 5))
	is.True(buf.Len() > 0)

	buf.Reset()
	is.NoErr(tally.WriteYAML(&buf))
	is.True(strings.Contains(buf.String(), "games: 100"))
	is.True(strings.Contains(buf.String(), "wins: 25"))
	is.True(strings.Contains(buf.String(), "win_rate: 0.25"))
}

func TestEmptyTally(t *testing.T) {
	is := is.New(t)
	tally := &Tally{}
	is.Equal(tally.WinRate(), 0.0)
	lo, hi := tally.WinRateCI(95)
	is.Equal(lo, 0.0)
	is.Equal(hi, 0.0)
	var buf bytes.Buffer
	is.NoErr(tally.Histogram(&buf, 5))
	is.Equal(buf.Len(), 0)
}
