package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Backend stub
// ---------------------------------------------------------------------------

type stubBackend struct {
	loginFn        func(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error)
	listSpacesFn   func(ctx context.Context) ([]domain.AcademicSpace, error)
	instructorsFn  func(ctx context.Context) ([]domain.Instructor, error)
	getFn          func(ctx context.Context, id int64) (*domain.Reservation, error)
	createFn       func(ctx context.Context, r domain.Reservation) (*domain.Reservation, error)
	updateFn       func(ctx context.Context, id int64, r domain.Reservation) (*domain.Reservation, error)
	loginCalls     atomic.Int32
	spacesCalls    atomic.Int32
	instrCalls     atomic.Int32
	getCalls       atomic.Int32
	createCalls    atomic.Int32
	updateCalls    atomic.Int32
	lastPayload    domain.Reservation
	lastUpdateID   int64
	payloadCapture sync.Mutex
}

func (b *stubBackend) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginResult, error) {
	b.loginCalls.Add(1)
	return b.loginFn(ctx, creds)
}

func (b *stubBackend) ListSpaces(ctx context.Context) ([]domain.AcademicSpace, error) {
	b.spacesCalls.Add(1)
	if b.listSpacesFn == nil {
		return []domain.AcademicSpace{{ID: 1, Name: "Lab 1", Available: true}, {ID: 2, Name: "Auditório", Available: false}}, nil
	}
	return b.listSpacesFn(ctx)
}

func (b *stubBackend) ListInstructors(ctx context.Context) ([]domain.Instructor, error) {
	b.instrCalls.Add(1)
	if b.instructorsFn == nil {
		return []domain.Instructor{{ID: 7, Name: "Ana"}}, nil
	}
	return b.instructorsFn(ctx)
}

func (b *stubBackend) GetReservation(ctx context.Context, id int64) (*domain.Reservation, error) {
	b.getCalls.Add(1)
	return b.getFn(ctx, id)
}

func (b *stubBackend) CreateReservation(ctx context.Context, r domain.Reservation) (*domain.Reservation, error) {
	b.createCalls.Add(1)
	b.capture(0, r)
	if b.createFn == nil {
		id := int64(100)
		r.ID = &id
		return &r, nil
	}
	return b.createFn(ctx, r)
}

func (b *stubBackend) UpdateReservation(ctx context.Context, id int64, r domain.Reservation) (*domain.Reservation, error) {
	b.updateCalls.Add(1)
	b.capture(id, r)
	if b.updateFn == nil {
		return &r, nil
	}
	return b.updateFn(ctx, id, r)
}

func (b *stubBackend) capture(id int64, r domain.Reservation) {
	b.payloadCapture.Lock()
	defer b.payloadCapture.Unlock()
	b.lastUpdateID = id
	b.lastPayload = r
}

func (b *stubBackend) networkCalls() int32 {
	return b.loginCalls.Load() + b.spacesCalls.Load() + b.instrCalls.Load() +
		b.getCalls.Load() + b.createCalls.Load() + b.updateCalls.Load()
}

// ---------------------------------------------------------------------------
// In-memory session store stub
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	mu      sync.Mutex
	records map[string]domain.SessionRecord
	ttls    map[string]time.Duration
	saveErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{
		records: make(map[string]domain.SessionRecord),
		ttls:    make(map[string]time.Duration),
	}
}

func (s *stubSessionStore) Save(_ context.Context, id string, rec domain.SessionRecord, ttl time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = rec
	s.ttls[id] = ttl
	return nil
}

func (s *stubSessionStore) Load(_ context.Context, id string) (*domain.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &rec, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

func (s *stubSessionStore) Ping(context.Context) error { return nil }

func (s *stubSessionStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
