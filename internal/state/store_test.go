package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/five82/pixwall/internal/photo"
)

func TestStore_ZeroValueIsPending(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.Loaded || snap.Settled() || snap.Failed() {
		t.Fatalf("zero snapshot = %#v, want pending", snap)
	}
	if snap.Photos != nil {
		t.Fatalf("Photos = %#v, want nil", snap.Photos)
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	records := []photo.Record{{ID: 0, URL: "a.jpg"}, {ID: 1, URL: "b.jpg"}}

	before := time.Now()
	s.Update(records, nil)

	snap := s.Snapshot()
	if !snap.Loaded || !snap.Settled() || snap.Failed() {
		t.Fatalf("snapshot flags = loaded:%v settled:%v failed:%v", snap.Loaded, snap.Settled(), snap.Failed())
	}
	if len(snap.Photos) != 2 || snap.Photos[0].URL != "a.jpg" {
		t.Fatalf("snapshot photos = %#v, want 2 items", snap.Photos)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Neither the input nor a returned snapshot may alias the stored slice.
	records[0].URL = "mutated"
	snap.Photos[1].URL = "mutated"
	snap2 := s.Snapshot()
	if snap2.Photos[0].URL != "a.jpg" || snap2.Photos[1].URL != "b.jpg" {
		t.Fatalf("Snapshot should clone photos; got %#v", snap2.Photos)
	}
}

func TestStore_FailureBeforeLoad(t *testing.T) {
	var s Store

	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if !snap.Failed() || !snap.Settled() {
		t.Fatalf("snapshot should be failed and settled: %#v", snap)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError should wrap the original error")
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update([]photo.Record{{ID: 7}}, nil)
	s.Update(nil, errors.New("later failure"))

	snap := s.Snapshot()
	if !snap.Loaded || snap.Failed() {
		t.Fatalf("loaded data should survive a later error: %#v", snap)
	}
	if len(snap.Photos) != 1 || snap.Photos[0].ID != 7 {
		t.Fatalf("photos changed on error: %#v", snap.Photos)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded error")
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	var s Store
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			s.Update([]photo.Record{{ID: i}}, nil)
		}(i)
		go func() {
			defer wg.Done()
			_ = s.Snapshot()
		}()
	}
	wg.Wait()

	if got := len(s.Snapshot().Photos); got != 1 {
		t.Fatalf("len(Photos) = %d, want 1", got)
	}
}
