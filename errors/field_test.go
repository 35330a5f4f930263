package errors

import "testing"

func TestFieldNilError(t *testing.T) {
	if err := Field("Name", nil, "no error"); err != nil {
		t.Fatalf("nil error must result in nil field error, got %+v", err)
	}
}

func TestFieldErrors(t *testing.T) {
	err := Field("Owners", ErrEmpty, "owner set required")

	if got := FieldErrors(err, "Owners"); len(got) != 1 {
		t.Fatalf("want one error for Owners, got %d", len(got))
	}
	if got := FieldErrors(err, "Balance"); len(got) != 0 {
		t.Fatalf("want no errors for Balance, got %d", len(got))
	}

	// a field error must still classify by its root kind
	if !ErrEmpty.Is(err) {
		t.Fatal("field error must preserve the root cause")
	}
}

func TestFieldErrorsThroughWrap(t *testing.T) {
	err := Wrap(Field("Amount", ErrAmount, "negative"), "deposit failed")
	if got := FieldErrors(err, "Amount"); len(got) != 1 {
		t.Fatalf("want one error for Amount, got %d", len(got))
	}
}
