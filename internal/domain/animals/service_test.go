package animals

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	list    []Animal
	failure error
}

func newTestRepo() *testRepo {
	return &testRepo{list: []Animal{}}
}

func (r *testRepo) List(ctx context.Context) ([]Animal, error) {
	if r.failure != nil {
		return nil, r.failure
	}
	out := make([]Animal, len(r.list))
	copy(out, r.list)
	return out, nil
}

func (r *testRepo) Replace(ctx context.Context, list []Animal) error {
	if r.failure != nil {
		return r.failure
	}
	cp := make([]Animal, len(list))
	copy(cp, list)
	r.list = cp
	return nil
}

func newTestService(repo *testRepo) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func validInput() Input {
	return Input{
		Categoria:  "Peixe",
		Especie:    "Betta",
		Quantidade: 2,
		DataCompra: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Valor:      15.5,
		Tamanho:    4,
		Origem:     "Loja X",
	}
}

func TestService_Create(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	a, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == "" {
		t.Fatal("expected generated id")
	}
	if len(repo.list) != 1 {
		t.Fatalf("expected 1 stored animal, got %d", len(repo.list))
	}
	if repo.list[0].ID != a.ID {
		t.Fatal("stored animal id mismatch")
	}
}

func TestService_Create_DefaultsDataCompra(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := validInput()
	in.DataCompra = time.Time{}

	a, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	if !a.DataCompra.Equal(want) {
		t.Fatalf("expected dataCompra defaulted to now, got %v", a.DataCompra)
	}
}

func TestService_Create_ValidationErrors(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	in := Input{
		Categoria:  "",
		Especie:    "Betta",
		Quantidade: 0,
		Valor:      -1,
		Tamanho:    0,
		Origem:     "",
		ImageURL:   "no-es-url",
	}

	_, err := svc.Create(context.Background(), in)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}

	wantFields := map[string]bool{
		"categoria":  false,
		"quantidade": false,
		"valor":      false,
		"tamanho":    false,
		"origem":     false,
		"imageUrl":   false,
	}
	for _, fe := range verrs {
		if _, ok := wantFields[fe.Field]; ok {
			wantFields[fe.Field] = true
		}
	}
	for field, seen := range wantFields {
		if !seen {
			t.Errorf("expected error for field %s", field)
		}
	}

	if len(repo.list) != 0 {
		t.Fatal("invalid record must not enter the store")
	}
}

func TestService_Update(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	a, _ := svc.Create(context.Background(), validInput())

	in := validInput()
	in.Especie = "Guppy"
	in.Quantidade = 10

	updated, err := svc.Update(context.Background(), a.ID, in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != a.ID {
		t.Fatal("update must not change the id")
	}
	if repo.list[0].Especie != "Guppy" || repo.list[0].Quantidade != 10 {
		t.Fatal("update not persisted")
	}
}

func TestService_Update_NotFound(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), "nope", validInput())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	a, _ := svc.Create(context.Background(), validInput())
	b, _ := svc.Create(context.Background(), validInput())

	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.list) != 1 || repo.list[0].ID != b.ID {
		t.Fatal("delete removed the wrong record")
	}

	if err := svc.Delete(context.Background(), a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestService_Reorder(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	var ids []string
	for _, nome := range []string{"A", "B", "C", "D"} {
		in := validInput()
		in.Especie = nome
		a, err := svc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("setup: %v", err)
		}
		ids = append(ids, a.ID)
	}

	// mueve A (0) a la posición 2 => B, C, A, D
	if err := svc.Reorder(context.Background(), 0, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, 0, 4)
	for _, a := range repo.list {
		got = append(got, a.Especie)
	}
	want := []string{"B", "C", "A", "D"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch: got %v want %v", got, want)
		}
	}

	// los ids no cambian, solo la posición
	if repo.list[2].ID != ids[0] {
		t.Fatal("reorder must keep identity")
	}
}

func TestService_Reorder_OutOfRange(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	_, _ = svc.Create(context.Background(), validInput())

	if err := svc.Reorder(context.Background(), 0, 5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err := svc.Reorder(context.Background(), -1, 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_Append_AllOrNothing(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo)

	good := validInput().toAnimal("id-1")
	bad := validInput().toAnimal("id-2")
	bad.Quantidade = 0

	err := svc.Append(context.Background(), []Animal{good, bad})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(repo.list) != 0 {
		t.Fatal("append must be all or nothing")
	}

	if err := svc.Append(context.Background(), []Animal{good}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.list) != 1 {
		t.Fatal("append not persisted")
	}
}
