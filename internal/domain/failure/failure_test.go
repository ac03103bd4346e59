package failure

import (
	"errors"
	"fmt"
	"testing"
)

func TestWrapNil(t *testing.T) {
	if err := Wrap(KindTransport, nil); err != nil {
		t.Fatalf("Wrap(nil) = %v, want nil", err)
	}
}

func TestKindOfThroughWrapping(t *testing.T) {
	sentinel := errors.New("boom")
	err := fmt.Errorf("cycle: %w", Wrap(KindShape, sentinel))

	kind, ok := KindOf(err)
	if !ok {
		t.Fatal("KindOf() found no kind")
	}
	if kind != KindShape {
		t.Errorf("KindOf() = %v, want %v", kind, KindShape)
	}
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is() lost the wrapped sentinel")
	}
}

func TestKindOfPlainError(t *testing.T) {
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf() reported a kind for an unclassified error")
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindConfig, "configuration error: x"},
		{KindTransport, "transport error: x"},
		{KindParse, "parse error: x"},
		{KindShape, "response shape error: x"},
		{KindDelivery, "delivery error: x"},
	}
	for _, tt := range tests {
		if got := Newf(tt.kind, "x").Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
