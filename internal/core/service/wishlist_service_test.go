package service

import (
	"context"
	"errors"
	"slices"
	"testing"
)

type stubWishListRepo struct {
	lists  map[string][]string
	getErr error
	setErr error
}

func newStubWishListRepo() *stubWishListRepo {
	return &stubWishListRepo{lists: make(map[string][]string)}
}

func (r *stubWishListRepo) Get(_ context.Context, username string) ([]string, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	items, ok := r.lists[username]
	if !ok {
		return []string{}, nil
	}
	return slices.Clone(items), nil
}

func (r *stubWishListRepo) Set(_ context.Context, username string, items []string) error {
	if r.setErr != nil {
		return r.setErr
	}
	r.lists[username] = slices.Clone(items)
	return nil
}

func TestWishListService_RoundTrip(t *testing.T) {
	repo := newStubWishListRepo()
	svc := NewWishListService(repo, discardLogger)

	want := []string{"wool socks", "coffee beans", "a decent novel"}
	if err := svc.Set(context.Background(), "alice", want); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	got, err := svc.Get(context.Background(), "alice")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Errorf("round trip mismatch: want %v, got %v", want, got)
	}
}

func TestWishListService_Get_MissingRecordReadsEmpty(t *testing.T) {
	repo := newStubWishListRepo()
	svc := NewWishListService(repo, discardLogger)

	items, err := svc.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Errorf("expected empty list, got %v", items)
	}
}

func TestWishListService_Set_FullReplace(t *testing.T) {
	repo := newStubWishListRepo()
	svc := NewWishListService(repo, discardLogger)

	_ = svc.Set(context.Background(), "bob", []string{"one", "two", "three"})
	// Removal of index 1 is "send the list again without it".
	_ = svc.Set(context.Background(), "bob", []string{"one", "three"})

	got, _ := svc.Get(context.Background(), "bob")
	if !slices.Equal(got, []string{"one", "three"}) {
		t.Errorf("expected replaced list, got %v", got)
	}
}

func TestWishListService_Set_EmptyListIsValid(t *testing.T) {
	repo := newStubWishListRepo()
	svc := NewWishListService(repo, discardLogger)

	_ = svc.Set(context.Background(), "carol", []string{"old wish"})
	if err := svc.Set(context.Background(), "carol", []string{}); err != nil {
		t.Fatalf("clearing the list must be allowed: %v", err)
	}

	got, _ := svc.Get(context.Background(), "carol")
	if len(got) != 0 {
		t.Errorf("expected cleared list, got %v", got)
	}
}

func TestWishListService_Set_NilBecomesEmpty(t *testing.T) {
	repo := newStubWishListRepo()
	svc := NewWishListService(repo, discardLogger)

	if err := svc.Set(context.Background(), "dave", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lists["dave"] == nil {
		t.Error("nil input must be persisted as an empty list")
	}
}

func TestWishListService_RepoErrors(t *testing.T) {
	repo := newStubWishListRepo()
	repo.getErr = errors.New("db unavailable")
	svc := NewWishListService(repo, discardLogger)

	if _, err := svc.Get(context.Background(), "alice"); err == nil {
		t.Error("expected get error, got nil")
	}

	repo.getErr = nil
	repo.setErr = errors.New("db unavailable")
	if err := svc.Set(context.Background(), "alice", []string{"x"}); err == nil {
		t.Error("expected set error, got nil")
	}
}
