package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(1000, 1000.005, 1e-5) {
		t.Fatal("expected relative tolerance to apply")
	}
}

func TestInvSqrt2Pi(t *testing.T) {
	want := 1 / math.Sqrt(2*math.Pi)
	if !NearlyEqual(InvSqrt2Pi, want, 1e-15) {
		t.Fatalf("InvSqrt2Pi = %v, want %v", InvSqrt2Pi, want)
	}
}

func TestSigmoid(t *testing.T) {
	if got := Sigmoid(123, 500, 0); got != 0.5 {
		t.Fatalf("Sigmoid(k=0) = %v, want 0.5", got)
	}
	if got := Sigmoid(500, 500, 0.3); got != 0.5 {
		t.Fatalf("Sigmoid(x=x0) = %v, want 0.5", got)
	}
	if got := Sigmoid(1000, 0, 1); got != 1 {
		t.Fatalf("Sigmoid(far right) = %v, want 1", got)
	}
	if got := Sigmoid(-1000, 0, 1); got > 1e-300 {
		t.Fatalf("Sigmoid(far left) = %v, want ~0", got)
	}
	lo, hi := Sigmoid(-3, 0, 0.5), Sigmoid(3, 0, 0.5)
	if !NearlyEqual(lo+hi, 1, 1e-15) {
		t.Fatalf("Sigmoid not antisymmetric: %v + %v", lo, hi)
	}
}
