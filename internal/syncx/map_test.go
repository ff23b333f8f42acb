package syncx

import (
	"sync"
	"testing"
)

func TestMapLoadOrStore(t *testing.T) {
	var m Map[string, int]

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.LoadOrStore("key", i)
		}(i)
	}
	wg.Wait()

	first, ok := m.Load("key")
	if !ok {
		t.Fatal("expected key to be stored")
	}

	actual, loaded := m.LoadOrStore("key", -1)
	if !loaded {
		t.Errorf("loaded: expected true")
	}

	if e, g := first, actual; e != g {
		t.Errorf("actual: expected '%v', got '%v'", e, g)
	}

	count := 0
	m.Range(func(key string, value int) bool {
		count++
		return true
	})

	if e, g := 1, count; e != g {
		t.Errorf("count: expected '%v', got '%v'", e, g)
	}

	m.Delete("key")

	if _, ok := m.Load("key"); ok {
		t.Errorf("expected key to be deleted")
	}
}
