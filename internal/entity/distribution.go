package entity

// Distribution option ids, fixed by the catalog.
const (
	DistributionSpecific  = "specific"
	DistributionCommunity = "community-broadcast"
	DistributionBoth      = "both"
)

// ToggleDistribution flips the option with the given id and enforces the
// exclusivity rule: turning on "both" clears the two individual options,
// and turning on either individual option clears "both". Unknown ids leave
// the options untouched. The input slice is not modified.
func ToggleDistribution(options []VendorDistributionOption, id string) []VendorDistributionOption {
	next := make([]VendorDistributionOption, len(options))
	copy(next, options)

	target := -1
	for i := range next {
		if next[i].Id == id {
			target = i
			break
		}
	}
	if target == -1 {
		return next
	}

	next[target].Selected = !next[target].Selected
	if !next[target].Selected {
		return next
	}

	for i := range next {
		if i == target {
			continue
		}
		if id == DistributionBoth || next[i].Id == DistributionBoth {
			next[i].Selected = false
		}
	}

	return next
}
