package badge

import (
	"context"
	"testing"
)

func TestRegisterUser(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	user, err := f.svc.RegisterUser(ctx, 7, "  mina  ")
	if err != nil {
		t.Fatalf("RegisterUser() error = %v", err)
	}
	if user.ID != 7 || user.Nickname != "mina" {
		t.Fatalf("user = %+v, want trimmed nickname", user)
	}

	got, err := f.svc.users.GetByID(ctx, 7)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got != user {
		t.Fatalf("GetByID() = %+v, want %+v", got, user)
	}
}

func TestRegisterUserValidation(t *testing.T) {
	f := setupService(t)
	ctx := context.Background()

	if _, err := f.svc.RegisterUser(ctx, 0, "mina"); err == nil {
		t.Fatal("zero id: expected error")
	}
	if _, err := f.svc.RegisterUser(ctx, 1, "   "); err == nil {
		t.Fatal("blank nickname: expected error")
	}
	if _, err := f.svc.RegisterUser(nil, 1, "mina"); err == nil {
		t.Fatal("nil context: expected error")
	}
}
