package titration

import (
	"github.com/probeworks/phmeter/internal/chem"
	"github.com/probeworks/phmeter/internal/equilibrium"
)

// tracker holds the mole-level state of a titratable solution: a buffer's
// conjugate pair, or water as the zero-capacity edge case of the same
// mechanism (ka == 0).
//
// Invariants: molesAcid, molesBase, excessAcid, excessBase >= 0 always;
// volume strictly positive; once exceeded is set it never clears short of
// a session reset.
type tracker struct {
	ka        float64 // weak-acid component constant; 0 marks water
	molesAcid float64 // n_HA
	molesBase float64 // n_A-
	volume    float64 // total solution volume, L

	// Titrant moles accumulated past capacity.
	excessAcid float64
	excessBase float64

	exceeded      bool
	exhaustedSide Reagent // which reagent exhausted its conjugate
}

func newBufferTracker(ka, molesAcid, molesBase, volume float64) *tracker {
	return &tracker{ka: ka, molesAcid: molesAcid, molesBase: molesBase, volume: volume}
}

func newWaterTracker(volume float64) *tracker {
	return &tracker{volume: volume}
}

// add applies one titrant drop of the given reagent. delta is the titrant
// moles in the drop, dropVolume its volume in L.
//
// Buffer region: acid converts conjugate base to acid mole-for-mole, base
// the reverse. The drop that would push the conjugate side negative clamps
// it to zero, sets the capacity flag, and routes the remainder into the
// excess pool. Water has no buffer region at all: the first drop trips the
// flag and everything accumulates as excess.
func (t *tracker) add(reagent Reagent, delta, dropVolume float64) {
	t.volume += dropVolume

	if t.ka == 0 {
		t.exceeded = true
		t.addExcess(reagent, delta)
		return
	}
	if t.exceeded {
		t.addExcess(reagent, delta)
		return
	}

	switch reagent {
	case ReagentAcid:
		if t.molesBase > delta {
			t.molesBase -= delta
			t.molesAcid += delta
			return
		}
		// Conjugate base exhausted at (or within) this drop.
		t.excessAcid += delta - t.molesBase
		t.molesAcid += t.molesBase
		t.molesBase = 0
		t.exceeded = true
		t.exhaustedSide = ReagentAcid
	case ReagentBase:
		if t.molesAcid > delta {
			t.molesAcid -= delta
			t.molesBase += delta
			return
		}
		t.excessBase += delta - t.molesAcid
		t.molesBase += t.molesAcid
		t.molesAcid = 0
		t.exceeded = true
		t.exhaustedSide = ReagentBase
	}
}

func (t *tracker) addExcess(reagent Reagent, delta float64) {
	if reagent == ReagentAcid {
		t.excessAcid += delta
	} else {
		t.excessBase += delta
	}
}

// hydrogen computes [H+] for the current state.
func (t *tracker) hydrogen() float64 {
	if t.ka == 0 {
		return t.waterHydrogen()
	}
	if !t.exceeded {
		switch {
		case t.molesAcid > 0 && t.molesBase > 0:
			// Henderson-Hasselbalch, mole form:
			// pH = pKa + log10(n_A/n_HA) <=> [H+] = Ka * n_HA/n_A.
			return t.ka * t.molesAcid / t.molesBase
		case t.molesBase == 0:
			// One-sided from the start: plain weak acid.
			return equilibrium.WeakAcidHydrogen(t.ka, t.molesAcid/t.volume)
		default:
			oh := equilibrium.WeakBaseHydroxide(chem.Kw/t.ka, t.molesBase/t.volume)
			return chem.Kw / oh
		}
	}

	// Past capacity the pH is set by the excess titrant, plus the residual
	// dissociation of the fully converted conjugate pool, which keeps the
	// curve finite at the exact equivalence point.
	if t.exhaustedSide == ReagentAcid {
		h := equilibrium.WeakAcidHydrogen(t.ka, t.molesAcid/t.volume)
		if net := t.excessAcid - t.excessBase; net > 0 {
			h += net / t.volume
		}
		return h
	}
	oh := equilibrium.WeakBaseHydroxide(chem.Kw/t.ka, t.molesBase/t.volume)
	if net := t.excessBase - t.excessAcid; net > 0 {
		oh += net / t.volume
	}
	return chem.Kw / oh
}

// waterHydrogen nets the accumulated strong acid and base against each
// other; whichever is in molar excess sets the sign. The 1e-7 baseline
// keeps untouched and exactly neutralized water at pH 7.
func (t *tracker) waterHydrogen() float64 {
	net := t.excessAcid - t.excessBase
	switch {
	case net > 0:
		return net/t.volume + chem.NeutralHydrogen
	case net < 0:
		oh := -net/t.volume + chem.NeutralHydrogen
		return chem.Kw / oh
	default:
		return chem.NeutralHydrogen
	}
}
