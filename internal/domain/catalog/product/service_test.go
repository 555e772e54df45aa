package product

import (
	"context"
	"testing"

	"stockledger/internal/core/apperror"
	"stockledger/internal/core/id"
)

type fakeRepo struct {
	items map[id.ID]*Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[id.ID]*Product{}}
}

func (r *fakeRepo) Create(ctx context.Context, p *Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	p, ok := r.items[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID.String())
	}
	return p, nil
}

func (r *fakeRepo) List(ctx context.Context) ([]*Product, error) {
	out := make([]*Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeRepo) Delete(ctx context.Context, productID id.ID) error {
	if _, ok := r.items[productID]; !ok {
		return apperror.NewNotFound("product", productID.String())
	}
	delete(r.items, productID)
	return nil
}

func TestCreate_TrimsAndValidates(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.Create(context.Background(), "  Widget  ", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if p.Name != "Widget" {
		t.Errorf("name = %q, want trimmed", p.Name)
	}

	if _, err := svc.Create(context.Background(), "   ", nil); err == nil {
		t.Error("expected error for blank name")
	}
}

func TestCreate_DuplicateName(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.Create(context.Background(), "Widget", nil); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), "Widget", nil)
	if err == nil {
		t.Fatal("expected duplicate error")
	}
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeDuplicate {
		t.Errorf("got %v, want duplicate error", err)
	}
}

func TestDelete_MissingProduct(t *testing.T) {
	svc := NewService(newFakeRepo())

	if err := svc.Delete(context.Background(), id.New()); !apperror.IsNotFound(err) {
		t.Errorf("got %v, want not found", err)
	}
}
