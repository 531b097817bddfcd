package trust

import (
	"math"
	"testing"

	"bitebank/internal/core/socialgraph"
)

func TestWeigh_SpecExample(t *testing.T) {
	t.Parallel()

	// one direct endorser at 0.8 plus two indirect at 0.5 each
	w := Weigh([]Endorsement{
		{EndorserID: "d1", Type: EndorsementSave, Distance: socialgraph.DistanceDirect, TrustScore: 0.8},
		{EndorserID: "i1", Type: EndorsementLike, Distance: socialgraph.DistanceIndirect, TrustScore: 0.5},
		{EndorserID: "i2", Type: EndorsementLike, Distance: socialgraph.DistanceIndirect, TrustScore: 0.5},
	})

	if math.Abs(w.Multiplier-0.85) > 1e-9 {
		t.Fatalf("multiplier = %v, want 0.85", w.Multiplier)
	}
	if w.DirectCount != 1 || w.IndirectCount != 2 {
		t.Fatalf("counts = %d/%d, want 1/2", w.DirectCount, w.IndirectCount)
	}
	if math.Abs(w.Contributions[0].FinalWeight-0.6) > 1e-9 {
		t.Fatalf("direct contribution = %v, want 0.6", w.Contributions[0].FinalWeight)
	}
}

func TestWeigh_CapsAtCeiling(t *testing.T) {
	t.Parallel()

	var es []Endorsement
	for i := 0; i < 50; i++ {
		es = append(es, Endorsement{Distance: socialgraph.DistanceDirect, TrustScore: 1})
	}
	w := Weigh(es)
	if w.Multiplier != MultiplierCap {
		t.Fatalf("multiplier = %v, want cap %v", w.Multiplier, MultiplierCap)
	}
	// total weight keeps the uncapped sum for auditability
	if math.Abs(w.TotalWeight-50*DirectWeight) > 1e-9 {
		t.Fatalf("total weight = %v", w.TotalWeight)
	}
}

func TestWeigh_UnknownAndOutOfRangeTrust(t *testing.T) {
	t.Parallel()

	w := Weigh([]Endorsement{
		{Distance: socialgraph.DistanceDirect, TrustScore: -1},  // unknown
		{Distance: socialgraph.DistanceDirect, TrustScore: 1.7}, // clamps to 1
	})
	if got := w.Contributions[0].FinalWeight; math.Abs(got-DirectWeight*UnknownTrustScore) > 1e-9 {
		t.Fatalf("unknown trust contribution = %v", got)
	}
	if got := w.Contributions[1].FinalWeight; math.Abs(got-DirectWeight) > 1e-9 {
		t.Fatalf("clamped trust contribution = %v", got)
	}
}

func TestWeigh_UnconnectedContributesNothing(t *testing.T) {
	t.Parallel()

	w := Weigh([]Endorsement{
		{Distance: socialgraph.DistanceUnconnected, TrustScore: 1},
		{Distance: socialgraph.DistanceSelf, TrustScore: 1},
	})
	if w.Multiplier != 0 || w.DirectCount != 0 || w.IndirectCount != 0 {
		t.Fatalf("unconnected/self endorsers must not contribute: %+v", w)
	}
}

func TestWeigh_Deterministic(t *testing.T) {
	t.Parallel()

	es := []Endorsement{
		{EndorserID: "a", Distance: socialgraph.DistanceDirect, TrustScore: 0.3},
		{EndorserID: "b", Distance: socialgraph.DistanceIndirect, TrustScore: 0.9},
	}
	a, b := Weigh(es), Weigh(es)
	if a.Multiplier != b.Multiplier || a.TotalWeight != b.TotalWeight {
		t.Fatalf("identical inputs must weigh identically")
	}
}

func TestWeigh_Empty(t *testing.T) {
	t.Parallel()

	w := Weigh(nil)
	if w.Multiplier != 0 || len(w.Contributions) != 0 {
		t.Fatalf("empty input must produce zero weight")
	}
}
