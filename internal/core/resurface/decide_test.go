package resurface

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// noon on 2026-03-11 UTC
var now = time.Date(2026, 3, 11, 12, 0, 0, 0, time.UTC)

func today() Day { return DayOf(now, nil) }

func mood(m Mood) *Mood { return &m }

func cand(id string, ageDays, words int) Candidate {
	return Candidate{
		ID:         id,
		Day:        today().AddDays(-ageDays),
		PromptText: "What made you smile?",
		Body:       "body of " + id,
		WordCount:  words,
	}
}

func marks(ages []int, m *Mood) []Mark {
	out := make([]Mark, 0, len(ages))
	for _, a := range ages {
		out = append(out, Mark{Day: today().AddDays(-a), Mood: m})
	}
	return out
}

func decide(s Snapshot) Decision {
	return DefaultRules().Decide(ownerA, now, time.UTC, s)
}

func TestDecide_SingleOldEntryIsSurfaced(t *testing.T) {
	t.Parallel()

	d := decide(Snapshot{Candidates: []Candidate{cand("e1", 120, 200)}})

	require.Equal(t, ReasonSelected, d.Reason)
	require.NotNil(t, d.Pick)
	assert.Equal(t, "e1", d.Pick.ID)
	assert.Equal(t, 1, d.Pool)
	assert.Equal(t, "2026-03-11", d.Today.String())
}

func TestDecide_ShortEntryLeavesPoolEmpty(t *testing.T) {
	t.Parallel()

	d := decide(Snapshot{Candidates: []Candidate{cand("e1", 120, 50)}})

	assert.Equal(t, ReasonEmptyPool, d.Reason)
	assert.Nil(t, d.Pick)
}

func TestDecide_ThreeSadDaysBlock(t *testing.T) {
	t.Parallel()

	d := decide(Snapshot{
		Recent:     marks([]int{2, 1, 0}, mood(MoodSad)),
		Candidates: []Candidate{cand("e1", 120, 200), cand("e2", 200, 300)},
	})
	assert.Equal(t, ReasonLowMood, d.Reason)
	assert.Nil(t, d.Pick)
}

func TestDecide_LowMoodBoundary(t *testing.T) {
	t.Parallel()

	two := decide(Snapshot{
		Recent:     marks([]int{1, 0}, mood(MoodSad)),
		Candidates: []Candidate{cand("e1", 120, 200)},
	})
	assert.Equal(t, ReasonSelected, two.Reason)

	three := decide(Snapshot{
		Recent:     marks([]int{2, 1, 0}, mood(MoodSad)),
		Candidates: []Candidate{cand("e1", 120, 200)},
	})
	assert.Equal(t, ReasonLowMood, three.Reason)
}

func TestTrailingLowStreak(t *testing.T) {
	t.Parallel()

	sad, calm := mood(MoodSad), mood(MoodCalm)
	cases := []struct {
		name  string
		marks []Mark
		want  int
	}{
		{"empty", nil, 0},
		{"newest not low", []Mark{{today().AddDays(-2), sad}, {today().AddDays(-1), sad}, {today(), calm}}, 0},
		{"broken by calm", []Mark{{today().AddDays(-3), sad}, {today().AddDays(-2), calm}, {today().AddDays(-1), sad}, {today(), sad}}, 2},
		{"broken by missing mood", []Mark{{today().AddDays(-2), sad}, {today().AddDays(-1), nil}, {today(), sad}}, 1},
		{"unsorted input", []Mark{{today(), sad}, {today().AddDays(-2), sad}, {today().AddDays(-1), sad}}, 3},
		{"same day entries count", []Mark{{today(), sad}, {today(), sad}, {today(), sad}}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, TrailingLowStreak(tc.marks))
		})
	}
}

func TestDecide_OldLowMoodsOutsideWindowIgnored(t *testing.T) {
	t.Parallel()

	d := decide(Snapshot{
		Recent:     marks([]int{9, 8, 7}, mood(MoodSad)),
		Candidates: []Candidate{cand("e1", 120, 200)},
	})
	assert.Equal(t, ReasonSelected, d.Reason)
}

func TestDisengaged(t *testing.T) {
	t.Parallel()

	cases := []struct {
		recent, prior int
		want          bool
	}{
		{0, 0, false},
		{0, 2, false},
		{0, 3, true},
		{1, 3, true},
		{2, 3, false},
		{2, 4, true},
		{3, 4, false},
		{3, 7, false},
		{1, 7, true},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("recent=%d prior=%d", tc.recent, tc.prior), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Disengaged(tc.recent, tc.prior))
		})
	}
}

func TestDecide_DisengagementDip(t *testing.T) {
	t.Parallel()

	d := decide(Snapshot{
		Recent:     marks([]int{3}, mood(MoodCalm)),
		Prior:      marks([]int{7, 9, 11, 11}, mood(MoodHappy)),
		Candidates: []Candidate{cand("e1", 120, 200)},
	})
	assert.Equal(t, ReasonDisengaged, d.Reason)

	// same day twice counts once, so prior has only two active days
	d = decide(Snapshot{
		Recent:     marks([]int{3}, mood(MoodCalm)),
		Prior:      marks([]int{8, 8, 12}, mood(MoodHappy)),
		Candidates: []Candidate{cand("e1", 120, 200)},
	})
	assert.Equal(t, ReasonSelected, d.Reason)
}

func TestDecide_WordCountBoundary(t *testing.T) {
	t.Parallel()

	d := decide(Snapshot{Candidates: []Candidate{cand("e79", 120, 79)}})
	assert.Equal(t, ReasonEmptyPool, d.Reason)

	d = decide(Snapshot{Candidates: []Candidate{cand("e80", 120, 80)}})
	require.Equal(t, ReasonSelected, d.Reason)
	assert.Equal(t, "e80", d.Pick.ID)
}

func TestDecide_AgeBoundary(t *testing.T) {
	t.Parallel()

	d := decide(Snapshot{Candidates: []Candidate{cand("e89", 89, 200)}})
	assert.Equal(t, ReasonEmptyPool, d.Reason)

	d = decide(Snapshot{Candidates: []Candidate{cand("e90", 90, 200)}})
	require.Equal(t, ReasonSelected, d.Reason)
	assert.Equal(t, "e90", d.Pick.ID)
}

func TestDecide_CooldownBoundary(t *testing.T) {
	t.Parallel()

	cd := DefaultRules().CooldownDays(ownerA)
	require.Equal(t, 35, cd)

	last := now.Add(-time.Duration(cd) * 24 * time.Hour)
	s := Snapshot{Candidates: []Candidate{cand("e1", 120, 200)}}

	justBefore := last.Add(time.Second)
	s.LastSurfacedAt = &justBefore
	d := decide(s)
	assert.Equal(t, ReasonCooldown, d.Reason)
	assert.Equal(t, 35, d.Cooldown)

	s.LastSurfacedAt = &last
	d = decide(s)
	assert.Equal(t, ReasonSelected, d.Reason)
}

func TestDecide_CooldownWinsOverEverything(t *testing.T) {
	t.Parallel()

	yesterday := now.Add(-24 * time.Hour)
	d := decide(Snapshot{
		LastSurfacedAt: &yesterday,
		Recent:         marks([]int{2, 1, 0}, mood(MoodSad)),
		Candidates:     []Candidate{cand("e1", 120, 200)},
	})
	assert.Equal(t, ReasonCooldown, d.Reason)
}

func TestDecide_SurfacedEntriesExcluded(t *testing.T) {
	t.Parallel()

	d := decide(Snapshot{
		Candidates: []Candidate{cand("e1", 120, 200), cand("e2", 150, 200)},
		Surfaced:   map[string]struct{}{"e1": {}},
	})
	require.Equal(t, ReasonSelected, d.Reason)
	assert.Equal(t, "e2", d.Pick.ID)
	assert.Equal(t, 1, d.Pool)

	d = decide(Snapshot{
		Candidates: []Candidate{cand("e1", 120, 200)},
		Surfaced:   map[string]struct{}{"e1": {}},
	})
	assert.Equal(t, ReasonEmptyPool, d.Reason)
}

func TestDecide_DeterministicWithinDay(t *testing.T) {
	t.Parallel()

	var pool []Candidate
	for i := 0; i < 5; i++ {
		pool = append(pool, cand(fmt.Sprintf("e%d", i), 100+i*10, 200))
	}
	s := Snapshot{Candidates: pool}
	r := DefaultRules()

	morning := time.Date(2026, 3, 11, 0, 5, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 11, 23, 55, 0, 0, time.UTC)
	a := r.Decide(ownerA, morning, time.UTC, s)
	b := r.Decide(ownerA, evening, time.UTC, s)
	require.Equal(t, ReasonSelected, a.Reason)
	assert.Equal(t, a.Pick.ID, b.Pick.ID)
	assert.Equal(t, "e4", a.Pick.ID)

	prev := r.Decide(ownerA, morning.AddDate(0, 0, -1), time.UTC, s)
	assert.Equal(t, "e0", prev.Pick.ID)
}

func TestPool_CapsAndKeepsOrder(t *testing.T) {
	t.Parallel()

	var cands []Candidate
	for i := 0; i < 15; i++ {
		cands = append(cands, cand(fmt.Sprintf("e%02d", i), 90+i, 200))
	}
	r := DefaultRules()
	pool := r.Pool(cands, nil, r.WindowsFor(today()).OldestAllowed)

	require.Len(t, pool, 12)
	assert.Equal(t, "e00", pool[0].ID)
	assert.Equal(t, "e11", pool[11].ID)
}

func TestRules_Normalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultRules(), Rules{}.Normalize())

	custom := Rules{BaseCooldownDays: 7, MinWordCount: -1, PoolSize: 3}.Normalize()
	assert.Equal(t, 7, custom.BaseCooldownDays)
	assert.Equal(t, 16, custom.CooldownSpreadDays)
	assert.Equal(t, 80, custom.MinWordCount)
	assert.Equal(t, 3, custom.PoolSize)
}

func TestMood(t *testing.T) {
	t.Parallel()

	assert.True(t, MoodSad.Low())
	assert.False(t, MoodAnxious.Low())
	assert.True(t, MoodTired.Valid())
	assert.False(t, Mood("furious").Valid())
	assert.Len(t, Moods(), 7)

	assert.Nil(t, MoodPtr(nil))
	empty := ""
	assert.Nil(t, MoodPtr(&empty))
	s := "calm"
	assert.Equal(t, MoodCalm, *MoodPtr(&s))
}
