package engine

import (
	"testing"
	"time"
)

func TestTimeProviderIsMonotonic(t *testing.T) {
	provider := NewTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
	if diff := t2.Sub(t1); diff < 10*time.Millisecond {
		t.Errorf("Expected at least 10ms difference, got %v", diff)
	}
}

func TestTimeSourceImplementations(t *testing.T) {
	var sources = []TimeSource{
		NewTimeProvider(),
		NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	for _, s := range sources {
		if s.Now().IsZero() {
			t.Errorf("%T returned zero time", s)
		}
	}
}
