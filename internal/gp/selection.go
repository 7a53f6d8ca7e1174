package gp

import "math/rand"

// RouletteWheelLinear selects count distinct evaluated individuals with
// probability proportional to raw fitness (spec §4.6, grounded on
// original_source/gp.c's push_gp_selection_roulette_wheel with ranked =
// FALSE). It returns nil if there are fewer than count evaluated
// individuals to choose from, matching the original's "not enough
// candidates" null return.
func RouletteWheelLinear(pop []*Individual, count int) []*Individual {
	return rouletteWheel(pop, count, false)
}

// RouletteWheelRanked selects like RouletteWheelLinear, but first sorts
// candidates by fitness and replaces each fitness with its rank (1-based),
// so breeding pressure depends only on relative order, not fitness
// magnitude (original_source/gp.c's ranked = TRUE branch).
func RouletteWheelRanked(pop []*Individual, count int) []*Individual {
	return rouletteWheel(pop, count, true)
}

func rouletteWheel(pop []*Individual, count int, ranked bool) []*Individual {
	var buckets []*Individual
	for _, ind := range pop {
		if ind.Evaluated {
			buckets = append(buckets, ind)
		}
	}
	if len(buckets) < count {
		return nil
	}

	weights := make([]float64, len(buckets))
	if ranked {
		sorted := append([]*Individual(nil), buckets...)
		sortByFitnessAscending(sorted)
		rank := make(map[*Individual]int, len(sorted))
		for i, ind := range sorted {
			rank[ind] = i + 1
		}
		for i, ind := range buckets {
			weights[i] = float64(rank[ind])
		}
	} else {
		for i, ind := range buckets {
			weights[i] = ind.Fitness
		}
	}

	var total float64
	for _, w := range weights {
		total += w
	}

	selected := make([]*Individual, 0, count)
	chosen := make(map[int]bool, count)
	for len(selected) < count && len(chosen) < len(buckets) {
		x := total * rand.Float64()
		idx := -1
		for i, w := range weights {
			if chosen[i] {
				continue
			}
			x -= w
			if x < 0 {
				idx = i
				break
			}
		}
		if idx < 0 {
			for i := range buckets {
				if !chosen[i] {
					idx = i
					break
				}
			}
		}
		chosen[idx] = true
		selected = append(selected, buckets[idx])
		total -= weights[idx]
	}
	return selected
}

// sortByFitnessAscending is a tiny insertion sort: population sizes in GP
// runs are small enough that sort.Slice's overhead isn't worth pulling in
// here, and it keeps the ranking deterministic for equal fitnesses.
func sortByFitnessAscending(inds []*Individual) {
	for i := 1; i < len(inds); i++ {
		for j := i; j > 0 && inds[j].Fitness < inds[j-1].Fitness; j-- {
			inds[j], inds[j-1] = inds[j-1], inds[j]
		}
	}
}
