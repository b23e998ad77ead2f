package engine

import (
	"context"
	"errors"
	"testing"
)

func TestNoneEngineReportsUnavailable(t *testing.T) {
	eng := None()

	res, err := eng.Complete(context.Background(), &Request{Prompt: "hi"})
	if res != nil {
		t.Errorf("result = %+v, want nil", res)
	}
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestNoneEngineInfo(t *testing.T) {
	info := None().Info()
	if info.Available {
		t.Error("null engine reports available")
	}
	if info.Mode != "none" {
		t.Errorf("Mode = %q, want %q", info.Mode, "none")
	}
}
