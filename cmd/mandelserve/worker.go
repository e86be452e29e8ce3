package main

import (
	"log"
	"sync"

	"github.com/marben/irpc"

	mandel "github.com/marben/mandelview"
)

// sessions keeps the counters for /stats.
type sessions struct {
	active   int
	segments int
	pixels   int64
	m        sync.Mutex
}

type stats struct {
	Active   int   `json:"active"`
	Segments int   `json:"segments"`
	Pixels   int64 `json:"pixels"`
}

func (s *sessions) stats() stats {
	s.m.Lock()
	defer s.m.Unlock()
	return stats{Active: s.active, Segments: s.segments, Pixels: s.pixels}
}

// connected counts ep as active until its connection ends.
func (s *sessions) connected(ep *irpc.Endpoint) {
	log.Printf("got connection from: %s", ep.RemoteAddr())
	s.incActive()
	go func() {
		<-ep.Context().Done()
		s.decActive()
	}()
}

func (s *sessions) incActive() {
	s.m.Lock()
	s.active++
	a := s.active
	s.m.Unlock()

	log.Printf("sessions: %d", a)
}

func (s *sessions) decActive() {
	s.m.Lock()
	s.active--
	a := s.active
	s.m.Unlock()

	log.Printf("sessions: %d", a)
}

func (s *sessions) segmentFinished(res *mandel.Result) {
	s.m.Lock()
	defer s.m.Unlock()
	s.segments++
	s.pixels += int64(res.Width * res.Height)
}
