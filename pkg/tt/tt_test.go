package tt

import "testing"

type recorder struct {
	errors int
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) { r.errors++ }

func add(a, b int) int { return a + b }

func TestTest(t *testing.T) {
	var r recorder
	Test(&r, "add", add, Table{
		Args(1, 2).Rets(3),
		Args(1, 2).Rets(Any),
		Args(1, 2).Rets(4),
	})
	if r.errors != 1 {
		t.Errorf("got %d errors, want 1", r.errors)
	}
}
