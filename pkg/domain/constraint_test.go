package domain

import (
	"errors"
	"testing"
)

func TestPairCanonical(t *testing.T) {
	p := Pair{Row1: 2, Col1: 3, Row2: 0, Col2: 1}
	want := Pair{Row1: 0, Col1: 1, Row2: 2, Col2: 3}
	if got := p.Canonical(); got != want {
		t.Errorf("Canonical() = %+v, want %+v", got, want)
	}
	if got := want.Canonical(); got != want {
		t.Errorf("Canonical() changed an already ordered pair: %+v", got)
	}

	sameRow := Pair{Row1: 1, Col1: 5, Row2: 1, Col2: 2}
	if got := sameRow.Canonical(); got != (Pair{Row1: 1, Col1: 2, Row2: 1, Col2: 5}) {
		t.Errorf("Canonical() same-row = %+v", got)
	}
}

func TestPairOther(t *testing.T) {
	p := Pair{Row1: 0, Col1: 0, Row2: 0, Col2: 1}
	a, b := p.Cells()

	got, ok := p.Other(a)
	if !ok || got != b {
		t.Errorf("Other(%v) = %v, %v", a, got, ok)
	}
	got, ok = p.Other(b)
	if !ok || got != a {
		t.Errorf("Other(%v) = %v, %v", b, got, ok)
	}
	if _, ok := p.Other(Coord{Row: 3, Col: 3}); ok {
		t.Error("Other() matched a coordinate outside the pair")
	}
}

func TestConstraintSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		set     ConstraintSet
		wantErr bool
	}{
		{
			name: "Valid",
			set: ConstraintSet{
				Equals:    []Pair{{0, 0, 0, 1}},
				NotEquals: []Pair{{2, 2, 3, 2}},
			},
		},
		{
			name: "Out Of Bounds",
			set: ConstraintSet{
				Equals: []Pair{{0, 0, 0, 4}},
			},
			wantErr: true,
		},
		{
			name: "Negative Coordinate",
			set: ConstraintSet{
				NotEquals: []Pair{{-1, 0, 0, 0}},
			},
			wantErr: true,
		},
		{
			name: "Self Link",
			set: ConstraintSet{
				Equals: []Pair{{1, 1, 1, 1}},
			},
			wantErr: true,
		},
		{
			name: "Pair In Both Lists",
			set: ConstraintSet{
				Equals:    []Pair{{0, 0, 0, 1}},
				NotEquals: []Pair{{0, 1, 0, 0}},
			},
			wantErr: true,
		},
		{
			name: "Empty Set",
			set:  ConstraintSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate(4)
			if tt.wantErr && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Validate() error = %v, want ErrInvalidInput", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}

func TestConstraintSetCanonical(t *testing.T) {
	a := ConstraintSet{
		Equals:    []Pair{{2, 0, 1, 0}, {0, 1, 0, 0}},
		NotEquals: []Pair{{3, 3, 3, 2}},
	}
	b := ConstraintSet{
		Equals:    []Pair{{0, 0, 0, 1}, {1, 0, 2, 0}},
		NotEquals: []Pair{{3, 2, 3, 3}},
	}

	ca, cb := a.Canonical(), b.Canonical()
	if len(ca.Equals) != len(cb.Equals) || len(ca.NotEquals) != len(cb.NotEquals) {
		t.Fatalf("canonical lengths differ: %+v vs %+v", ca, cb)
	}
	for i := range ca.Equals {
		if ca.Equals[i] != cb.Equals[i] {
			t.Errorf("Equals[%d]: %+v != %+v", i, ca.Equals[i], cb.Equals[i])
		}
	}
	for i := range ca.NotEquals {
		if ca.NotEquals[i] != cb.NotEquals[i] {
			t.Errorf("NotEquals[%d]: %+v != %+v", i, ca.NotEquals[i], cb.NotEquals[i])
		}
	}
}
