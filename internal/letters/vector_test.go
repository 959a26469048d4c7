package letters

import "testing"

func TestFromStringIgnoresNonAlpha(t *testing.T) {
	v := FromString("Ca7t!")
	want := FromString("cat")
	if v != want {
		t.Errorf("FromString(%q) = %v, want %v", "Ca7t!", v, want)
	}
}

func TestAddSub(t *testing.T) {
	a := FromString("cat")
	b := FromString("or")
	sum := a.Add(b)
	if sum.Sum() != 5 {
		t.Fatalf("sum total = %d, want 5", sum.Sum())
	}
	back := sum.Sub(b)
	if !back.Equal(a) {
		t.Errorf("Sub did not invert Add: got %v, want %v", back, a)
	}
}

func TestGreaterOrEqual(t *testing.T) {
	pool := FromString("actor")
	target := FromString("cat")
	if !pool.GreaterOrEqual(target) {
		t.Errorf("expected %v >= %v", pool, target)
	}
	if pool.GreaterOrEqual(FromString("actors")) {
		t.Errorf("did not expect %v >= %v", pool, FromString("actors"))
	}
}

func TestStringRoundTrip(t *testing.T) {
	v := FromString("hello")
	if got := v.String(); got != "ehllo" {
		t.Errorf("String() = %q, want %q", got, "ehllo")
	}
}

func TestLettersSortedMultiset(t *testing.T) {
	v := FromString("elephant")
	got := v.Letters()
	want := []string{"a", "e", "e", "h", "l", "n", "p", "t"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Letters()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
