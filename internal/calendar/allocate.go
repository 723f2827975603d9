package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/krystalg80/The-Reddit-Mastermind/internal/types"
)

// allocate walks the week day by day and produces the original posts: a
// (subreddit, persona, topic) triple plus a time slot for every scheduled
// slot. Counters update after each assignment, so later slots see the
// pressure earlier slots created.
func (g *Generator) allocate(req Request, week [7]time.Time, warnings *[]string) []types.Post {
	n := req.PostsPerWeek
	base := n / 7
	extra := n % 7

	subCounts := make(map[string]int, len(req.Subreddits))
	personaCounts := make(map[string]int, len(req.Personas))
	usedTopics := make(map[string]bool, len(req.Topics))

	var originals []types.Post
	for day := 0; day < 7; day++ {
		slots := base
		if day < extra {
			slots++
		}
		for s := 0; s < slots; s++ {
			sub := g.pickSubreddit(req.Subreddits, subCounts)
			persona := g.pickPersona(req.Personas, personaCounts)
			topic := g.pickTopic(req.Topics, usedTopics)

			post := types.Post{
				ID:           uuid.NewString(),
				PersonaKey:   personaKey(persona),
				SubredditKey: subredditKey(sub),
				Topic:        topic.Query,
				Date:         week[day],
				Hour:         firstPostHour + g.rng.Intn(lastPostHour-firstPostHour+1),
				Minute:       minuteSlots[g.rng.Intn(len(minuteSlots))],
				Kind:         types.KindOriginal,
				Status:       types.StatusPending,
			}
			originals = append(originals, post)

			subCounts[post.SubredditKey]++
			personaCounts[post.PersonaKey]++
			usedTopics[topicKey(topic)] = true

			if subCounts[post.SubredditKey] > sub.Limit() {
				*warnings = append(*warnings, fmt.Sprintf(
					"subreddit %q over its weekly limit (%d posts, limit %d)",
					sub.Name, subCounts[post.SubredditKey], sub.Limit()))
			}
		}
	}
	return originals
}

// pickSubreddit samples a community with probability proportional to
// 1/(count+1), restricted to communities still under their weekly cap when
// any exist. When everything is saturated it falls back to the single
// least-used community, first-in-input-order on ties; the cap is knowingly
// overridden in that case and the over-limit warning fires after assignment.
func (g *Generator) pickSubreddit(subs []types.Subreddit, counts map[string]int) types.Subreddit {
	eligible := make([]types.Subreddit, 0, len(subs))
	for _, s := range subs {
		if counts[subredditKey(s)] < s.Limit() {
			eligible = append(eligible, s)
		}
	}

	if len(eligible) == 0 {
		least := subs[0]
		for _, s := range subs[1:] {
			if counts[subredditKey(s)] < counts[subredditKey(least)] {
				least = s
			}
		}
		return least
	}

	var total float64
	weights := make([]float64, len(eligible))
	for i, s := range eligible {
		weights[i] = 1.0 / float64(counts[subredditKey(s)]+1)
		total += weights[i]
	}

	r := g.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return eligible[i]
		}
	}
	return eligible[len(eligible)-1]
}

// pickPersona keeps authorship loosely round-robin: usually the least-used
// persona, sometimes any persona from the less-used half, so the rotation
// has human-looking noise in it.
func (g *Generator) pickPersona(personas []types.Persona, counts map[string]int) types.Persona {
	ordered := make([]types.Persona, len(personas))
	copy(ordered, personas)
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[personaKey(ordered[i])] < counts[personaKey(ordered[j])]
	})

	if g.rng.Float64() < g.PersonaBias {
		return ordered[0]
	}
	half := (len(ordered) + 1) / 2
	return ordered[g.rng.Intn(half)]
}

// pickTopic prefers topics unused this week; once every topic has been used
// it samples uniformly from the full set, repeats and all. There are usually
// fewer topics than posts, so repeats are expected late in the week.
func (g *Generator) pickTopic(topics []types.Topic, used map[string]bool) types.Topic {
	unused := make([]types.Topic, 0, len(topics))
	for _, t := range topics {
		if !used[topicKey(t)] {
			unused = append(unused, t)
		}
	}
	if len(unused) > 0 {
		return unused[g.rng.Intn(len(unused))]
	}
	return topics[g.rng.Intn(len(topics))]
}

func topicKey(t types.Topic) string {
	return types.RefKey(t.ID, t.Query)
}
