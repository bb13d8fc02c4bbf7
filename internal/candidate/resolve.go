package candidate

// Resolve picks the reference out of p. Creation time is unreliable after
// copies, so the older file wins when it is both strictly larger and
// strictly more recently modified; otherwise the most recent one does.
func Resolve(p Pair) Resolution {
	mr, smr := p.MostRecent, p.SecondMostRecent
	if smr.Meta.Size > mr.Meta.Size && smr.Meta.Modified.After(mr.Meta.Modified) {
		return Resolution{Reference: smr, Baseline: mr}
	}
	return Resolution{Reference: mr, Baseline: smr}
}
