package settings

import (
	"context"
	"testing"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/types"
)

type fakeSettingsRepo struct {
	stored *Settings
	saves  int
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*Settings, error) {
	if r.stored == nil {
		return nil, apperror.NewNotFound("settings", "global")
	}
	return r.stored, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, s *Settings) error {
	r.stored = s
	r.saves++
	return nil
}

func TestGet_AutoCreatesDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo)

	got, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if !got.UnitPrice.Equal(DefaultUnitPrice) {
		t.Errorf("unit price = %s, want default %s", got.UnitPrice, DefaultUnitPrice)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d, want the default row persisted once", repo.saves)
	}

	// Second read serves the stored row without another save.
	if _, err := svc.Get(context.Background()); err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if repo.saves != 1 {
		t.Errorf("saves = %d after second read, want 1", repo.saves)
	}
}

func TestUpdate_PersistsAndCommits(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo)

	svc.Editor().Begin()
	svc.Editor().SetPending(types.MoneyFromInt(550))

	got, err := svc.Update(context.Background(), types.MoneyFromInt(550))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if !got.UnitPrice.Equal(types.MoneyFromInt(550)) {
		t.Errorf("unit price = %s, want 550", got.UnitPrice)
	}
	if _, open := svc.Editor().Pending(); open {
		t.Error("edit session should close after a successful save")
	}
	if !svc.Editor().Committed().UnitPrice.Equal(types.MoneyFromInt(550)) {
		t.Error("committed value not updated")
	}
}

func TestStagedEditFlow(t *testing.T) {
	repo := &fakeSettingsRepo{stored: &Settings{UnitPrice: types.MoneyFromInt(400)}}
	svc := NewService(repo)

	seed, err := svc.BeginEdit(context.Background())
	if err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}
	if !seed.Equal(types.MoneyFromInt(400)) {
		t.Errorf("seed = %s, want stored 400", seed)
	}

	if _, err := svc.StagePrice(context.Background(), types.MoneyFromInt(550)); err != nil {
		t.Fatalf("StagePrice failed: %v", err)
	}

	// A concurrent read refreshes the committed value mid-edit; the
	// staged price must survive it.
	if _, err := svc.Get(context.Background()); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	pending, open := svc.PendingPrice()
	if !open || !pending.Equal(types.MoneyFromInt(550)) {
		t.Fatalf("pending = %s open=%v, want 550 with open session", pending, open)
	}

	got, err := svc.CommitEdit(context.Background())
	if err != nil {
		t.Fatalf("CommitEdit failed: %v", err)
	}
	if !got.UnitPrice.Equal(types.MoneyFromInt(550)) {
		t.Errorf("committed price = %s, want 550", got.UnitPrice)
	}
	if !repo.stored.UnitPrice.Equal(types.MoneyFromInt(550)) {
		t.Error("staged price was not persisted")
	}
	if _, open := svc.PendingPrice(); open {
		t.Error("session should close after commit")
	}
}

func TestStagedEdit_RequiresOpenSession(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{})

	if _, err := svc.StagePrice(context.Background(), types.MoneyFromInt(500)); err == nil {
		t.Error("StagePrice without a session should fail")
	}
	if _, err := svc.CommitEdit(context.Background()); err == nil {
		t.Error("CommitEdit without a session should fail")
	}
}

func TestStagedEdit_RejectsNegativePrice(t *testing.T) {
	svc := NewService(&fakeSettingsRepo{})

	if _, err := svc.BeginEdit(context.Background()); err != nil {
		t.Fatalf("BeginEdit failed: %v", err)
	}

	if _, err := svc.StagePrice(context.Background(), types.MoneyFromInt(-5)); err == nil {
		t.Fatal("expected validation error")
	}

	// The previous staged value is untouched by the rejected one.
	pending, open := svc.PendingPrice()
	if !open || !pending.Equal(DefaultUnitPrice) {
		t.Errorf("pending = %s open=%v, want untouched seed", pending, open)
	}
}

func TestUpdate_RejectsNegativePrice(t *testing.T) {
	repo := &fakeSettingsRepo{}
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), types.MoneyFromInt(-1))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if repo.saves != 0 {
		t.Error("invalid price must not be persisted")
	}
}
