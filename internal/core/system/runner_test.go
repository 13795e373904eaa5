package system

import (
	"reflect"
	"testing"
	"time"
)

type recordSystem struct {
	name  string
	phase Phase
	log   *[]string
}

func (s *recordSystem) Phase() Phase { return s.phase }

func (s *recordSystem) Update(_ time.Time) {
	*s.log = append(*s.log, s.name)
}

func TestRunnerOrdersByPhaseThenRegistration(t *testing.T) {
	var got []string
	r := NewRunner()
	r.Register(&recordSystem{name: "cleanup", phase: PhaseCleanup, log: &got})
	r.Register(&recordSystem{name: "shots", phase: PhaseUpdate, log: &got})
	r.Register(&recordSystem{name: "collision", phase: PhaseCollision, log: &got})
	r.Register(&recordSystem{name: "player", phase: PhaseUpdate, log: &got})
	r.Register(&recordSystem{name: "input", phase: PhaseInput, log: &got})
	r.Register(&recordSystem{name: "formation", phase: PhaseUpdate, log: &got})
	r.Register(&recordSystem{name: "enemy-shots", phase: PhaseUpdate, log: &got})

	r.Tick(time.Now())

	want := []string{"input", "shots", "player", "formation", "enemy-shots", "collision", "cleanup"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tick order = %v, want %v", got, want)
	}
}

func TestRunnerResortsAfterLateRegister(t *testing.T) {
	var got []string
	r := NewRunner()
	r.Register(&recordSystem{name: "collision", phase: PhaseCollision, log: &got})
	r.Tick(time.Now())

	got = got[:0]
	r.Register(&recordSystem{name: "input", phase: PhaseInput, log: &got})
	r.Tick(time.Now())

	if want := []string{"input", "collision"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("tick order = %v, want %v", got, want)
	}
}
