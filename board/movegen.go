package board

import "github.com/daystram/duel/position"

type direction struct {
	dx, dy int
}

var (
	dirLaterals  = []direction{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	dirDiagonals = []direction{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
	dirAll       = append(append([]direction{}, dirLaterals...), dirDiagonals...)

	offsetKnight = []direction{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, 2}, {-2, 1}, {-2, -1}, {-1, -2},
	}
	offsetKing = []direction{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
)

// LegalDestinations returns the squares the piece on from may move to.
// Check is not considered, so a king may step onto an attacked square.
func (b *Board) LegalDestinations(from position.Pos) []position.Pos {
	pc, ok := b.PieceAt(from)
	if !ok {
		return nil
	}

	switch pc.Kind() {
	case KindPawn:
		return b.genPawn(from, pc)
	case KindBishop:
		return b.genSliding(from, pc.Side(), dirDiagonals)
	case KindKnight:
		return b.genStepping(from, pc.Side(), offsetKnight)
	case KindRook:
		return b.genSliding(from, pc.Side(), dirLaterals)
	case KindQueen:
		return b.genSliding(from, pc.Side(), dirAll)
	case KindKing:
		return b.genStepping(from, pc.Side(), offsetKing)
	default:
		return nil
	}
}

// GenerateMoves lists every move available to the side to move.
func (b *Board) GenerateMoves() []Move {
	var mvs []Move
	for i := 0; i < TotalCells; i++ {
		pc := b.cells[i]
		if pc.IsZero() || pc.Side() != b.turn {
			continue
		}
		from, _ := position.FromIndex(i)
		for _, to := range b.LegalDestinations(from) {
			target, isCapture := b.PieceAt(to)
			mvs = append(mvs, Move{
				From:            from,
				To:              to,
				Piece:           pc,
				Captured:        target,
				IsCapture:       isCapture,
				IsDoubleAdvance: pc.Kind() == KindPawn && abs(to.Y()-from.Y()) == 2,
			})
		}
	}
	return mvs
}

// genSliding walks each ray until the first occupied square, which is kept
// only when it holds an enemy piece.
func (b *Board) genSliding(from position.Pos, s Side, dirs []direction) []position.Pos {
	var dst []position.Pos
	for _, d := range dirs {
		for cur := from.Offset(d.dx, d.dy); cur.Valid(); cur = cur.Offset(d.dx, d.dy) {
			if target, ok := b.PieceAt(cur); ok {
				if target.Side() != s {
					dst = append(dst, cur)
				}
				break
			}
			dst = append(dst, cur)
		}
	}
	return dst
}

func (b *Board) genStepping(from position.Pos, s Side, offsets []direction) []position.Pos {
	var dst []position.Pos
	for _, o := range offsets {
		cur := from.Offset(o.dx, o.dy)
		if !cur.Valid() {
			continue
		}
		if target, ok := b.PieceAt(cur); ok && target.Side() == s {
			continue
		}
		dst = append(dst, cur)
	}
	return dst
}

// genPawn allows the two square advance whenever the target is empty; the
// square in between is not checked.
func (b *Board) genPawn(from position.Pos, pc Piece) []position.Pos {
	var dst []position.Pos
	fwd := pc.Side().Forward()

	if cur := from.Offset(0, fwd); cur.Valid() {
		if _, ok := b.PieceAt(cur); !ok {
			dst = append(dst, cur)
		}
	}
	for _, dx := range []int{-1, 1} {
		cur := from.Offset(dx, fwd)
		if !cur.Valid() {
			continue
		}
		if target, ok := b.PieceAt(cur); ok && target.Side() != pc.Side() {
			dst = append(dst, cur)
		}
	}
	if !pc.HasMoved() {
		if cur := from.Offset(0, 2*fwd); cur.Valid() {
			if _, ok := b.PieceAt(cur); !ok {
				dst = append(dst, cur)
			}
		}
	}
	return dst
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
