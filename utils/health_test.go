package utils

import (
	"context"
	"errors"
	"testing"
)

func TestCheckHealth(t *testing.T) {
	up := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("down") })

	st := CheckHealth(context.Background(), up, down)
	if !st.Store || st.Redis {
		t.Fatalf("status = %+v", st)
	}
	if got := GetHealthStatus(); got != st {
		t.Fatalf("snapshot = %+v, want %+v", got, st)
	}
	if st := CheckHealth(context.Background(), down, nil); st.Store || st.Redis {
		t.Fatalf("status = %+v", st)
	}
}
