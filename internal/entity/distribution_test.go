package entity

import "testing"

func testOptions() []VendorDistributionOption {
	return []VendorDistributionOption{
		{Id: DistributionSpecific, Name: "Specific Vendors"},
		{Id: DistributionCommunity, Name: "Community Broadcast"},
		{Id: DistributionBoth, Name: "Targeted and Broadcast"},
	}
}

func selectedIds(options []VendorDistributionOption) []string {
	ids := make([]string, 0)
	for _, o := range options {
		if o.Selected {
			ids = append(ids, o.Id)
		}
	}

	return ids
}

func TestToggleDistribution_BothDeselectsIndividuals(t *testing.T) {
	options := testOptions()
	options = ToggleDistribution(options, DistributionSpecific)
	options = ToggleDistribution(options, DistributionCommunity)
	options = ToggleDistribution(options, DistributionBoth)

	ids := selectedIds(options)
	if len(ids) != 1 || ids[0] != DistributionBoth {
		t.Errorf("expected only %q selected, got %v", DistributionBoth, ids)
	}
}

func TestToggleDistribution_IndividualDeselectsBoth(t *testing.T) {
	options := testOptions()
	options = ToggleDistribution(options, DistributionBoth)
	options = ToggleDistribution(options, DistributionSpecific)

	ids := selectedIds(options)
	if len(ids) != 1 || ids[0] != DistributionSpecific {
		t.Errorf("expected only %q selected, got %v", DistributionSpecific, ids)
	}
}

func TestToggleDistribution_IndividualsCanCoexist(t *testing.T) {
	options := testOptions()
	options = ToggleDistribution(options, DistributionSpecific)
	options = ToggleDistribution(options, DistributionCommunity)

	ids := selectedIds(options)
	if len(ids) != 2 {
		t.Errorf("expected specific and community selected together, got %v", ids)
	}
}

func TestToggleDistribution_ToggleOffRoundTrip(t *testing.T) {
	options := testOptions()
	once := ToggleDistribution(options, DistributionSpecific)
	twice := ToggleDistribution(once, DistributionSpecific)

	if len(selectedIds(twice)) != 0 {
		t.Errorf("expected no selection after toggling twice, got %v", selectedIds(twice))
	}
}

func TestToggleDistribution_UnknownIdIsNoop(t *testing.T) {
	options := testOptions()
	next := ToggleDistribution(options, "does-not-exist")

	if len(selectedIds(next)) != 0 {
		t.Errorf("expected unknown id to leave options unchanged, got %v", selectedIds(next))
	}
}

func TestToggleDistribution_DoesNotMutateInput(t *testing.T) {
	options := testOptions()
	_ = ToggleDistribution(options, DistributionBoth)

	if len(selectedIds(options)) != 0 {
		t.Error("expected input slice to stay unmodified")
	}
}
