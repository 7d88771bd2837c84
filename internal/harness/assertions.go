package harness

import (
	"fmt"
	"math"
)

// evaluate checks one assertion against a finished run. Returns "" on
// success, a failure message otherwise.
func evaluate(a Assertion, r *Result) string {
	switch a.Type {
	case "final_ph":
		tol := a.Tolerance
		if tol == 0 {
			tol = 1e-3
		}
		if math.Abs(r.Final.PH-a.Value) > tol {
			return fmt.Sprintf("final_ph: expected %.4f +/- %g, got %.4f", a.Value, tol, r.Final.PH)
		}

	case "capacity_exceeded":
		if r.Final.CapacityExceeded != a.Exceeded {
			return fmt.Sprintf("capacity_exceeded: expected %v, got %v", a.Exceeded, r.Final.CapacityExceeded)
		}

	case "flag_first_true_at":
		at := 0
		for _, e := range r.Curve {
			if e.CapacityExceeded {
				at = e.Seq
				break
			}
		}
		if at != a.Drop {
			return fmt.Sprintf("flag_first_true_at: expected drop %d, got %d (0 = never)", a.Drop, at)
		}

	case "monotonic":
		// Checked only until the capacity flag turns on; past the
		// equivalence point the direction may flip sharply.
		prev := r.Initial.PH
		for _, e := range r.Curve {
			if e.CapacityExceeded {
				break
			}
			switch a.Direction {
			case "nonincreasing":
				if e.PH > prev+1e-12 {
					return fmt.Sprintf("monotonic: pH rose from %.6f to %.6f at drop %d", prev, e.PH, e.Seq)
				}
			case "nondecreasing":
				if e.PH < prev-1e-12 {
					return fmt.Sprintf("monotonic: pH fell from %.6f to %.6f at drop %d", prev, e.PH, e.Seq)
				}
			}
			prev = e.PH
		}
	}
	return ""
}
