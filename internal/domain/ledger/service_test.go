package ledger

import (
	"context"
	"testing"
	"time"

	"stockledger/internal/core/apperror"
	appctx "stockledger/internal/core/context"
	"stockledger/internal/core/id"
	"stockledger/internal/core/types"
	"stockledger/internal/domain/catalog/product"
)

// In-memory fakes.

type fakeTransactionRepo struct {
	items map[id.ID]*Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{items: map[id.ID]*Transaction{}}
}

func (r *fakeTransactionRepo) Create(ctx context.Context, t *Transaction) error {
	t.Timestamp = time.Now()
	r.items[t.ID] = t
	return nil
}

func (r *fakeTransactionRepo) GetByID(ctx context.Context, txID id.ID) (*Transaction, error) {
	t, ok := r.items[txID]
	if !ok {
		return nil, apperror.NewNotFound("transaction", txID.String())
	}
	return t, nil
}

func (r *fakeTransactionRepo) List(ctx context.Context) ([]*Transaction, error) {
	out := make([]*Transaction, 0, len(r.items))
	for _, t := range r.items {
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTransactionRepo) Delete(ctx context.Context, txID id.ID) error {
	if _, ok := r.items[txID]; !ok {
		return apperror.NewNotFound("transaction", txID.String())
	}
	delete(r.items, txID)
	return nil
}

type fakeProductRepo struct {
	items map[id.ID]*product.Product
}

func newFakeProductRepo(products ...*product.Product) *fakeProductRepo {
	r := &fakeProductRepo{items: map[id.ID]*product.Product{}}
	for _, p := range products {
		r.items[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.items[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, productID id.ID) (*product.Product, error) {
	p, ok := r.items[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID.String())
	}
	return p, nil
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*product.Product, error) {
	out := make([]*product.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, productID id.ID) error {
	delete(r.items, productID)
	return nil
}

func TestAppend_SnapshotsProductName(t *testing.T) {
	widget := product.NewProduct("Widget", nil)
	svc := NewService(newFakeTransactionRepo(), newFakeProductRepo(widget))

	got, err := svc.Append(context.Background(), AppendInput{
		Date:      types.MustParseDay("2024-01-05"),
		ProductID: widget.ID,
		Type:      TypeIn,
		Quantity:  10,
	})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if got.ProductName != "Widget" {
		t.Errorf("product name = %q, want snapshot of catalog name", got.ProductName)
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp not assigned on create")
	}
}

func TestAppend_UnknownProductRejected(t *testing.T) {
	svc := NewService(newFakeTransactionRepo(), newFakeProductRepo())

	_, err := svc.Append(context.Background(), AppendInput{
		Date:      types.MustParseDay("2024-01-05"),
		ProductID: id.New(),
		Type:      TypeIn,
		Quantity:  1,
	})
	if err == nil {
		t.Fatal("expected error for unknown product")
	}

	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeValidation {
		t.Errorf("got %v, want validation error", err)
	}
}

func TestAppend_RecordsActingWorker(t *testing.T) {
	widget := product.NewProduct("Widget", nil)
	svc := NewService(newFakeTransactionRepo(), newFakeProductRepo(widget))

	ctx := appctx.WithUser(context.Background(), &appctx.UserContext{WorkerID: "worker-42"})
	got, err := svc.Append(ctx, AppendInput{
		Date:      types.MustParseDay("2024-01-05"),
		ProductID: widget.ID,
		Type:      TypeOut,
		Quantity:  2,
	})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if got.WorkerID == nil || *got.WorkerID != "worker-42" {
		t.Errorf("worker id = %v, want worker-42", got.WorkerID)
	}
}

func TestDelete_MissingTransaction(t *testing.T) {
	svc := NewService(newFakeTransactionRepo(), newFakeProductRepo())

	err := svc.Delete(context.Background(), id.New())
	if !apperror.IsNotFound(err) {
		t.Errorf("got %v, want not found", err)
	}
}

func TestList_DisplayOrder(t *testing.T) {
	widget := product.NewProduct("Widget", nil)
	repo := newFakeTransactionRepo()
	svc := NewService(repo, newFakeProductRepo(widget))

	dates := []string{"2024-01-03", "2024-02-01", "2024-01-10"}
	for _, d := range dates {
		if _, err := svc.Append(context.Background(), AppendInput{
			Date:      types.MustParseDay(d),
			ProductID: widget.ID,
			Type:      TypeIn,
			Quantity:  1,
		}); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"2024-02-01", "2024-01-10", "2024-01-03"}
	for i, w := range want {
		if items[i].Date.String() != w {
			t.Errorf("position %d = %s, want %s", i, items[i].Date, w)
		}
	}
}
