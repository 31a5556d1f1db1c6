package ephemeris

import "testing"

func TestScratchZeroedOnCheckout(t *testing.T) {
	// Dirty an arena, return it, and verify the next checkout hands out
	// zeroed memory. Values from an aborted calculation must never leak
	// into the next one.
	s := checkoutScratch()
	for i := range s.positions {
		s.positions[i] = 99
	}
	for i := range s.cusps {
		s.cusps[i] = 99
	}
	copy(s.errText[:], "stale diagnostic")
	releaseScratch(s)

	s2 := checkoutScratch()
	defer releaseScratch(s2)

	for i, v := range s2.positions {
		if v != 0 {
			t.Errorf("positions[%d] = %v after checkout, want 0", i, v)
		}
	}
	for i, v := range s2.cusps {
		if v != 0 {
			t.Errorf("cusps[%d] = %v after checkout, want 0", i, v)
		}
	}
	for i, b := range s2.errText {
		if b != 0 {
			t.Errorf("errText[%d] = %v after checkout, want 0", i, b)
			break
		}
	}
}
