package puzzle

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		board   Board
		wantErr bool
	}{
		{"easy initial", Board{1, 2, 3, 0, 4, 5, 6}, false},
		{"hard initial", Board{1, 2, 3, 4, 5, 0, 6, 7, 8, 9, 10}, false},
		{"even slot count", Board{1, 2, 0, 3}, true},
		{"too small", Board{0}, true},
		{"two empty slots", Board{1, 2, 0, 0, 4, 5, 6}, true},
		{"no empty slot", Board{1, 2, 3, 4, 4, 5, 6}, true},
		{"duplicate block", Board{1, 2, 2, 0, 4, 5, 6}, true},
		{"block out of range", Board{1, 2, 9, 0, 4, 5, 6}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.board)
			if tc.wantErr {
				var stateErr *InvalidStateError
				if !errors.As(err, &stateErr) {
					t.Fatalf("expected InvalidStateError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLegalMovesFromInitial(t *testing.T) {
	b := Board{1, 2, 3, 0, 4, 5, 6}
	moves := LegalMoves(b)

	if len(moves) != 2 {
		t.Fatalf("expected 2 moves, got %d: %v", len(moves), moves)
	}
	// Stable ascending source order: slide of 3 first, slide of 4 second.
	if moves[0].From != 2 || moves[1].From != 4 {
		t.Fatalf("expected moves from slots 2 and 4, got %v", moves)
	}
}

func TestJumpOverOpposingBlock(t *testing.T) {
	// Right block 4 has slid left; block 3 may now jump over it.
	b := Board{1, 2, 3, 4, 0, 5, 6}
	next, err := ApplyMove(b, Move{From: 2})
	if err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	want := Board{1, 2, 0, 4, 3, 5, 6}
	if !next.Equal(want) {
		t.Fatalf("expected %v, got %v", want, next)
	}
}

func TestJumpOverOwnTeamIsIllegal(t *testing.T) {
	// Block 2 would have to jump over its own teammate 3.
	b := Board{1, 2, 3, 0, 4, 5, 6}
	_, err := ApplyMove(b, Move{From: 1})

	var moveErr *InvalidMoveError
	if !errors.As(err, &moveErr) {
		t.Fatalf("expected InvalidMoveError, got %v", err)
	}
}

func TestBackwardMoveIsIllegal(t *testing.T) {
	// After 3 slides right, it may not slide back.
	b := Board{1, 2, 0, 3, 4, 5, 6}
	if _, err := ApplyMove(b, Move{From: 3}); err == nil {
		t.Fatal("expected left block moving backward to be rejected")
	}
}

func TestApplyMoveDoesNotMutateInput(t *testing.T) {
	b := Board{1, 2, 3, 0, 4, 5, 6}
	before := b.Key()
	if _, err := ApplyMove(b, Move{From: 2}); err != nil {
		t.Fatalf("ApplyMove: %v", err)
	}
	if b.Key() != before {
		t.Fatalf("input board mutated: %s", b.Key())
	}
}

func TestSuccessorsStableOrder(t *testing.T) {
	b := Board{1, 2, 3, 0, 4, 5, 6}
	succ := Successors(b)

	if len(succ) != 2 {
		t.Fatalf("expected 2 successors, got %d", len(succ))
	}
	if !succ[0].Equal(Board{1, 2, 0, 3, 4, 5, 6}) {
		t.Fatalf("unexpected first successor: %v", succ[0])
	}
	if !succ[1].Equal(Board{1, 2, 3, 4, 0, 5, 6}) {
		t.Fatalf("unexpected second successor: %v", succ[1])
	}
}

func TestStuckBoardHasNoMoves(t *testing.T) {
	// Empty slot on the edge with only left blocks beside it.
	b := Board{0, 1, 2, 4, 3, 5, 6}
	if err := Validate(b); err != nil {
		t.Fatalf("board should be well formed: %v", err)
	}
	if moves := LegalMoves(b); len(moves) != 0 {
		t.Fatalf("expected no legal moves, got %v", moves)
	}
}

func TestParseBoardRoundTrip(t *testing.T) {
	b := Board{1, 2, 3, 0, 4, 5, 6}
	parsed, err := ParseBoard(b.Key())
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if !parsed.Equal(b) {
		t.Fatalf("round trip mismatch: %v", parsed)
	}

	if _, err := ParseBoard("1,2,x"); err == nil {
		t.Fatal("expected parse error for non-numeric slot")
	}
}
