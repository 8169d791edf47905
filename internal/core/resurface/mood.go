package resurface

// Mood is one tag of the fixed mood enumeration
type Mood string

// Known moods, MoodSad is the only low mood
const (
	MoodHappy    Mood = "happy"
	MoodCalm     Mood = "calm"
	MoodGrateful Mood = "grateful"
	MoodNeutral  Mood = "neutral"
	MoodAnxious  Mood = "anxious"
	MoodTired    Mood = "tired"
	MoodSad      Mood = "sad"
)

var allMoods = []Mood{MoodHappy, MoodCalm, MoodGrateful, MoodNeutral, MoodAnxious, MoodTired, MoodSad}

// Moods lists the enumeration in display order
func Moods() []Mood { return append([]Mood(nil), allMoods...) }

// Valid reports whether m is part of the enumeration
func (m Mood) Valid() bool {
	for _, k := range allMoods {
		if m == k {
			return true
		}
	}
	return false
}

// Low reports whether m signals distress
func (m Mood) Low() bool { return m == MoodSad }

// MoodPtr converts a nullable db value into a *Mood
func MoodPtr(s *string) *Mood {
	if s == nil || *s == "" {
		return nil
	}
	m := Mood(*s)
	return &m
}
