package game

import (
	"reflect"
	"testing"
)

func TestNewCarCellOrdering(t *testing.T) {
	// The cell list is built rear to front and then reversed, so index 0 is
	// the forward lead cell. The movement math relies on this.
	tests := []struct {
		name string
		spec CarSpec
		want []Cell
	}{
		{
			name: "horizontal length 2",
			spec: CarSpec{Orientation: Horizontal, X: 1, Y: 3, Length: 2},
			want: []Cell{{X: 2, Y: 3}, {X: 1, Y: 3}},
		},
		{
			name: "vertical length 3",
			spec: CarSpec{Orientation: Vertical, X: 4, Y: 1, Length: 3},
			want: []Cell{{X: 4, Y: 3}, {X: 4, Y: 2}, {X: 4, Y: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := NewCar('A', tt.spec)
			if !reflect.DeepEqual(car.Cells, tt.want) {
				t.Errorf("Cells = %v, want %v", car.Cells, tt.want)
			}
			if !car.InParking {
				t.Error("new car should start in the parking")
			}
		})
	}
}

func TestComputeMoveIsPure(t *testing.T) {
	car := NewCar('A', CarSpec{Orientation: Horizontal, X: 2, Y: 3, Length: 2})
	before := append([]Cell(nil), car.Cells...)

	first := car.ComputeMove(Forward)
	second := car.ComputeMove(Forward)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated ComputeMove differs: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(car.Cells, before) {
		t.Errorf("ComputeMove mutated the car: %v, want %v", car.Cells, before)
	}
}

func TestComputeMoveShift(t *testing.T) {
	car := NewCar('B', CarSpec{Orientation: Vertical, X: 3, Y: 2, Length: 2})

	forward := car.ComputeMove(Forward)
	want := []Cell{{X: 3, Y: 4}, {X: 3, Y: 3}}
	if !reflect.DeepEqual(forward, want) {
		t.Errorf("Forward = %v, want %v", forward, want)
	}

	backward := car.ComputeMove(Backward)
	want = []Cell{{X: 3, Y: 2}, {X: 3, Y: 1}}
	if !reflect.DeepEqual(backward, want) {
		t.Errorf("Backward = %v, want %v", backward, want)
	}
}

func TestApplyMoveOutOfBounds(t *testing.T) {
	// A car at the edge attempting to move further outward keeps its cells.
	car := NewCar('A', CarSpec{Orientation: Horizontal, X: 1, Y: 3, Length: 2})
	before := append([]Cell(nil), car.Cells...)

	if car.ApplyMove(Backward) {
		t.Error("ApplyMove should reject a move past the left edge")
	}
	if !reflect.DeepEqual(car.Cells, before) {
		t.Errorf("Rejected move changed cells: %v, want %v", car.Cells, before)
	}
	if !car.InParking {
		t.Error("rejected move should not clear InParking")
	}
}

func TestApplyMoveExit(t *testing.T) {
	// When the candidate lead cell is the exit the move is accepted
	// unconditionally and the car leaves the lot.
	car := NewCar('A', CarSpec{Orientation: Horizontal, X: 5, Y: 3, Length: 2})

	if !car.ApplyMove(Forward) {
		t.Fatal("exit move should be accepted")
	}
	if car.InParking {
		t.Error("car should have left the parking")
	}
	if car.Cells[0] != (Cell{X: ExitX, Y: ExitY}) {
		t.Errorf("lead cell = %v, want the exit (%d,%d)", car.Cells[0], ExitX, ExitY)
	}
}

func TestApplyMoveExitOnlyOnRowThree(t *testing.T) {
	// Off-row cars at the right edge are out of bounds, not exiting.
	car := NewCar('B', CarSpec{Orientation: Horizontal, X: 5, Y: 4, Length: 2})

	if car.ApplyMove(Forward) {
		t.Error("a non-target row should not reach the exit")
	}
	if !car.InParking {
		t.Error("rejected move must not clear InParking")
	}
}

func TestCloneIndependence(t *testing.T) {
	car := NewCar('C', CarSpec{Orientation: Vertical, X: 2, Y: 1, Length: 3})
	clone := car.Clone()

	clone.ApplyMove(Forward)

	if reflect.DeepEqual(car.Cells, clone.Cells) {
		t.Error("moving the clone should not move the original")
	}
	if car.Cells[0] != (Cell{X: 2, Y: 3}) {
		t.Errorf("original lead = %v, want (2,3)", car.Cells[0])
	}
}

func TestSpecRoundTrip(t *testing.T) {
	spec := CarSpec{Orientation: Vertical, X: 4, Y: 2, Length: 2}
	car := NewCar('D', spec)

	if got := car.Spec(); got != spec {
		t.Errorf("Spec() = %+v, want %+v", got, spec)
	}
}
