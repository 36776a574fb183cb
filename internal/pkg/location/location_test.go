package location

import "testing"

func TestResolve(t *testing.T) {
	lat := -6.2
	lng := 106.81666

	if got := Resolve(&lat, &lng); got != "-6.20000, 106.81666" {
		t.Errorf("Resolve = %q", got)
	}
	if got := Resolve(nil, nil); got != NotAvailable {
		t.Errorf("Resolve(nil, nil) = %q, want sentinel", got)
	}
	if got := Resolve(&lat, nil); got != NotAvailable {
		t.Errorf("Resolve with missing longitude = %q, want sentinel", got)
	}
}
