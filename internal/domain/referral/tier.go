package referral

import (
	"errors"
	"fmt"
	"sort"
)

type Tier struct {
	Name           string
	Level          int
	RequiredPoints int64
	Icon           string
	Benefits       string
}

type Progress struct {
	Current Tier

	// Next is nil if Current is already the highest tier.
	Next *Tier

	// Percentage is in range [0, 100].
	Percentage float64
}

type Step struct {
	Tier     Tier
	Unlocked bool
	Current  bool
}

// Ladder is a list of tiers ordered by strictly increasing required points.
type Ladder struct {
	tiers []Tier
}

func NewLadder(tiers []Tier) (*Ladder, error) {
	if len(tiers) == 0 {
		return nil, errors.New("tier ladder is empty")
	}

	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RequiredPoints < sorted[j].RequiredPoints
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].RequiredPoints == sorted[i-1].RequiredPoints {
			return nil, fmt.Errorf("tiers %s and %s have the same threshold %d",
				sorted[i-1].Name, sorted[i].Name, sorted[i].RequiredPoints)
		}
	}

	return &Ladder{tiers: sorted}, nil
}

func (l *Ladder) Tiers() []Tier {
	result := make([]Tier, len(l.tiers))
	copy(result, l.tiers)
	return result
}

// Progress locates the tier of the given points and how far it is toward the next one. Points
// below the lowest threshold still belong to the lowest tier.
func (l *Ladder) Progress(points int64) Progress {
	currentIdx := l.currentIndex(points)
	current := l.tiers[currentIdx]

	if currentIdx == len(l.tiers)-1 {
		return Progress{Current: current, Next: nil, Percentage: 100}
	}

	next := l.tiers[currentIdx+1]
	span := float64(next.RequiredPoints - current.RequiredPoints)
	percentage := float64(points-current.RequiredPoints) / span * 100

	return Progress{Current: current, Next: &next, Percentage: clamp(percentage, 0, 100)}
}

// Steps renders every tier of the ladder, marking which are unlocked by the points and which one
// is the current tier.
func (l *Ladder) Steps(points int64) []Step {
	currentIdx := l.currentIndex(points)
	steps := make([]Step, 0, len(l.tiers))
	for i, tier := range l.tiers {
		steps = append(steps, Step{
			Tier:     tier,
			Unlocked: points >= tier.RequiredPoints,
			Current:  i == currentIdx,
		})
	}

	return steps
}

func (l *Ladder) currentIndex(points int64) int {
	idx := 0
	for i, tier := range l.tiers {
		if tier.RequiredPoints <= points {
			idx = i
		}
	}

	return idx
}

// Points weights direct and second-level referrals.
func Points(direct, indirect, directPoints, indirectPoints int64) int64 {
	return direct*directPoints + indirect*indirectPoints
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}

	if v > max {
		return max
	}

	return v
}
