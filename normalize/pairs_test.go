package normalize

import "testing"

func TestPlanPairs(t *testing.T) {
	pairs, err := PlanPairs([]string{"rna.tsv"}, []string{"dna.tsv"}, "out.tsv")
	if err != nil {
		t.Fatal(err)
	}

	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, expected 1", len(pairs))
	}

	// A single pair uses the output path as given.
	if pairs[0].Out != "out.tsv" {
		t.Errorf("Out: got %q, expected %q", pairs[0].Out, "out.tsv")
	}
}

func TestPlanPairsSuffixesMultipleOutputs(t *testing.T) {
	pairs, err := PlanPairs(
		[]string{"r1.tsv", "r2.tsv"},
		[]string{"d1.tsv", "d2.tsv"},
		"out.tsv")
	if err != nil {
		t.Fatal(err)
	}

	if pairs[0].Out != "out.pair1.tsv" || pairs[1].Out != "out.pair2.tsv" {
		t.Errorf("got outputs %q and %q", pairs[0].Out, pairs[1].Out)
	}

	if pairs[0].RNA != "r1.tsv" || pairs[0].DNA != "d1.tsv" {
		t.Errorf("pair 1 mispaired: %+v", pairs[0])
	}
}

func TestPlanPairsRejectsUnequalLists(t *testing.T) {
	if _, err := PlanPairs([]string{"r1.tsv", "r2.tsv"}, []string{"d1.tsv"}, "out.tsv"); err == nil {
		t.Fatal("expected an error for unequal list lengths, got none")
	}

	if _, err := PlanPairs(nil, nil, "out.tsv"); err == nil {
		t.Fatal("expected an error for empty lists, got none")
	}
}
