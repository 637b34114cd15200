package update

import (
	"github.com/mggg/gerrychain-go/partition"
)

// ElectionResults is Election's computed value: per-party vote totals per
// part, derived percentages, and the winner of each part.
type ElectionResults struct {
	Name    string
	Parties []string
	Votes   map[string]map[int]float64 // party -> part -> votes
}

// Percent returns party's share of the two-way (or n-way) vote in part.
func (r ElectionResults) Percent(party string, part int) float64 {
	total := 0.0
	for _, p := range r.Parties {
		total += r.Votes[p][part]
	}
	if total == 0 {
		return 0
	}
	return r.Votes[party][part] / total
}

// Winner returns the party with the most votes in part.
func (r ElectionResults) Winner(part int) string {
	best := ""
	bestVotes := -1.0
	for _, p := range r.Parties {
		v := r.Votes[p][part]
		if v > bestVotes {
			bestVotes = v
			best = p
		}
	}
	return best
}

// SeatsWon counts, for every party, the number of parts it wins.
func (r ElectionResults) SeatsWon(parts []int) map[string]int {
	out := make(map[string]int, len(r.Parties))
	for _, part := range parts {
		out[r.Winner(part)]++
	}
	return out
}

// Election tallies per-party vote-count attributes per part. Parties
// names the node attribute holding each party's vote count.
type Election struct {
	ElectionName string
	Parties      []string
}

func (e Election) Name() string { return e.ElectionName }

func (e Election) Recompute(p *partition.Partition) (interface{}, error) {
	votes := make(map[string]map[int]float64, len(e.Parties))
	for _, party := range e.Parties {
		tallied, err := Tally{Attr: party}.Recompute(p)
		if err != nil {
			return nil, err
		}
		votes[party] = tallied.(map[int]float64)
	}
	return ElectionResults{Name: e.ElectionName, Parties: e.Parties, Votes: votes}, nil
}
