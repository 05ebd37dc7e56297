package scheduler

import (
	"testing"

	"github.com/fitclub/wellness-api/session"
)

type fakeStore struct {
	count int
}

func (f *fakeStore) Create() *session.Session            { return &session.Session{} }
func (f *fakeStore) Get(string) (*session.Session, bool) { return nil, false }
func (f *fakeStore) Put(*session.Session)                {}
func (f *fakeStore) Delete(string)                       {}
func (f *fakeStore) Count() int                          { return f.count }

func TestSchedulerStartStop(t *testing.T) {
	s := NewScheduler(&fakeStore{})

	if err := s.Start(); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	s.Stop()
}

func TestRefreshGauge(t *testing.T) {
	store := &fakeStore{count: 3}
	s := NewScheduler(store)

	// Calling the job directly keeps the test independent of timing.
	s.refreshGauge()
}
