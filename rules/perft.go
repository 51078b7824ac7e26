package rules

// Perft counts leaf nodes (move sequences) from the position for a given depth.
// Promotions count once per promotion choice, as in standard perft tables.
// The board is restored before returning.
func Perft(b *Board, side Color, last *Move, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	pc := perftCtx{bufs: make([][]Move, depth+1)}
	return perftRec(b, side, last, depth, &pc)
}

type perftCtx struct {
	bufs [][]Move
}

func (pc *perftCtx) bufFor(depth int) []Move {
	buf := pc.bufs[depth]
	if buf == nil {
		buf = make([]Move, 0, 64)
	}
	return buf[:0]
}

func perftRec(b *Board, side Color, last *Move, depth int, pc *perftCtx) (uint64, error) {
	if depth == 0 {
		return 1, nil
	}
	moves, err := b.GenerateMovesInto(pc.bufFor(depth), side, last)
	if err != nil {
		return 0, err
	}
	pc.bufs[depth] = moves

	var nodes uint64
	var variants [4]Move
	for _, m := range moves {
		for _, v := range promotionVariants(m, &variants) {
			b.MakeMove(&v)
			n, err := perftRec(b, side.Opposite(), &v, depth-1, pc)
			b.UnmakeMove(&v)
			if err != nil {
				return 0, err
			}
			nodes += n
		}
	}
	return nodes, nil
}

// PerftDivide returns, for each legal root move, the number of leaf nodes
// reachable from it at the given depth, keyed by the move's coordinate form.
func PerftDivide(b *Board, side Color, last *Move, depth int) (map[string]uint64, error) {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result, nil
	}
	moves, err := b.GenerateMoves(side, last)
	if err != nil {
		return nil, err
	}
	var variants [4]Move
	for _, m := range moves {
		for _, v := range promotionVariants(m, &variants) {
			b.MakeMove(&v)
			cnt, err := Perft(b, side.Opposite(), &v, depth-1)
			b.UnmakeMove(&v)
			if err != nil {
				return nil, err
			}
			result[v.String()] = cnt
		}
	}
	return result, nil
}

// promotionVariants expands a pending promotion into one move per choice.
func promotionVariants(m Move, out *[4]Move) []Move {
	if !m.PendingPromotion() {
		out[0] = m
		return out[:1]
	}
	for i, pt := range PromotionChoices {
		v := m
		v.PromoteToType = pt
		out[i] = v
	}
	return out[:]
}
