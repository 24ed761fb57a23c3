package dispose

import "testing"

type fakeResource struct {
	name     string
	releases int
	log      *[]string
}

func (f *fakeResource) Release() {
	f.releases++
	if f.log != nil {
		*f.log = append(*f.log, f.name)
	}
}

func TestCollector_ReleaseAllReverseOrder(t *testing.T) {
	var log []string
	var c Collector
	for _, name := range []string{"a", "b", "c"} {
		c.Collect(&fakeResource{name: name, log: &log})
	}

	c.ReleaseAll()

	if got := len(log); got != 3 {
		t.Fatalf("released %d resources, want 3", got)
	}
	if log[0] != "c" || log[2] != "a" {
		t.Errorf("release order = %v, want [c b a]", log)
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d after ReleaseAll, want 0", c.Len())
	}
}

func TestCollector_RemoveAndReleaseOnce(t *testing.T) {
	var c Collector
	r := &fakeResource{}
	c.Collect(r)

	if !c.RemoveAndRelease(r) {
		t.Fatal("RemoveAndRelease of owned resource = false, want true")
	}
	if c.RemoveAndRelease(r) {
		t.Error("second RemoveAndRelease = true, want false")
	}
	c.ReleaseAll()
	if r.releases != 1 {
		t.Errorf("releases = %d, want 1", r.releases)
	}
}

func TestCollector_RemoveKeepsResourceAlive(t *testing.T) {
	var c Collector
	r := &fakeResource{}
	c.Collect(r)

	if !c.Remove(r) {
		t.Fatal("Remove = false, want true")
	}
	c.ReleaseAll()
	if r.releases != 0 {
		t.Errorf("releases = %d after Remove + ReleaseAll, want 0", r.releases)
	}
}

func TestCollector_NilIgnored(t *testing.T) {
	var c Collector
	c.Collect(nil)
	if c.Len() != 0 {
		t.Errorf("Len() = %d after Collect(nil), want 0", c.Len())
	}
	if c.Owns(nil) {
		t.Error("Owns(nil) = true, want false")
	}
}
