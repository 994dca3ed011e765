package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     E4,
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     H8,
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     A1,
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 7",
			notation: "E4",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()
	tests := []struct {
		file    byte
		rank    int
		want    int
		wantErr error
	}{
		{file: 'a', rank: 1, want: 0},
		{file: 'h', rank: 1, want: 7},
		{file: 'a', rank: 2, want: 8},
		{file: 'e', rank: 4, want: 28},
		{file: 'h', rank: 8, want: 63},
		{file: 'i', rank: 1, wantErr: ErrOutOfRange},
		{file: '`', rank: 1, wantErr: ErrOutOfRange},
		{file: 'a', rank: 0, wantErr: ErrOutOfRange},
		{file: 'a', rank: 9, wantErr: ErrOutOfRange},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.file)+string(rune('0'+tt.rank)), func(t *testing.T) {
			t.Parallel()
			got, err := Index(tt.file, tt.rank)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected index: got=%d want=%d", got, tt.want)
			}
		})
	}
}

func TestFromIndex(t *testing.T) {
	t.Parallel()
	for i := 0; i < TotalCells; i++ {
		p, err := FromIndex(i)
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if !p.Valid() {
			t.Errorf("invalid pos at %d: %v", i, p)
		}
		if p.X() != i%MaxComponentScalar || p.Y() != i/MaxComponentScalar {
			t.Errorf("unexpected components at %d: got=(%d,%d) want=(%d,%d)", i, p.X(), p.Y(), i%MaxComponentScalar, i/MaxComponentScalar)
		}
		got, err := p.Index()
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if got != i {
			t.Errorf("unexpected round trip: got=%d want=%d", got, i)
		}
		back, err := Index(p.File(), p.Rank())
		if err != nil || back != i {
			t.Errorf("unexpected file/rank round trip: got=%d err=%v want=%d", back, err, i)
		}
	}

	for _, i := range []int{-1, 64, 100} {
		if _, err := FromIndex(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("unexpected error for %d: got=%v want=%v", i, err, ErrOutOfRange)
		}
	}
}

func TestOffsetValidity(t *testing.T) {
	t.Parallel()
	tests := []struct {
		from   Pos
		dx, dy int
		want   string
		valid  bool
	}{
		{from: E4, dx: 1, dy: 1, want: "f5", valid: true},
		{from: A1, dx: -1, dy: 0, valid: false},
		{from: A1, dx: 0, dy: -1, valid: false},
		{from: H8, dx: 1, dy: 0, valid: false},
		{from: H8, dx: 0, dy: 1, valid: false},
		{from: G1, dx: -1, dy: 2, want: "f3", valid: true},
		{from: B1, dx: -2, dy: 1, valid: false},
		{from: A1, dx: 0, dy: 256, valid: false},
		{from: H1, dx: 0, dy: -256, valid: false},
		{from: A1, dx: 256, dy: 0, valid: false},
	}

	for _, tt := range tests {
		got := tt.from.Offset(tt.dx, tt.dy)
		if got.Valid() != tt.valid {
			t.Errorf("unexpected validity for %v%+d%+d: got=%v want=%v", tt.from, tt.dx, tt.dy, got.Valid(), tt.valid)
		}
		if got.Notation() != tt.want {
			t.Errorf("unexpected notation: got=%q want=%q", got.Notation(), tt.want)
		}
		if !tt.valid {
			if _, err := got.Index(); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfRange)
			}
		}
	}
}

func TestNewChecked(t *testing.T) {
	t.Parallel()
	if p, err := NewChecked('d', 4); err != nil || p != D4 {
		t.Errorf("unexpected result: got=%v,%v want=%v", p, err, D4)
	}
	if _, err := NewChecked('z', 5); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfRange)
	}
	if _, err := NewChecked('a', 48); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrOutOfRange)
	}
	if New('z', 5).Valid() {
		t.Error("unexpected valid pos z5")
	}
	for _, rank := range []int{257, -255, 9, 0} {
		p := New('a', rank)
		if p.Valid() {
			t.Errorf("unexpected valid pos at rank %d: %v", rank, p)
		}
		if _, err := p.Index(); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("unexpected error at rank %d: got=%v want=%v", rank, err, ErrOutOfRange)
		}
		if p.Notation() != "" {
			t.Errorf("unexpected notation at rank %d: got=%q want=%q", rank, p.Notation(), "")
		}
		if p.Rank() != rank {
			t.Errorf("unexpected rank: got=%d want=%d", p.Rank(), rank)
		}
		if _, err := NewChecked('a', rank); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("unexpected error at rank %d: got=%v want=%v", rank, err, ErrOutOfRange)
		}
	}
	if New('h', -255).Valid() {
		t.Error("unexpected valid pos h-255")
	}
}
