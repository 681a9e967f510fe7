package asm

// Descent is what a children-capable visit returns: either a child visitor
// to descend into, or an explicit skip of the whole subtree.
type Descent[V any] struct {
	child   V
	descend bool
}

// Descend walks the record's sub-blocks with child.
func Descend[V any](child V) Descent[V] { return Descent[V]{child: child, descend: true} }

// Skip fast-forwards past the record's sub-blocks. Neither VisitEnd nor
// Halted is called for a skipped subtree.
func Skip[V any]() Descent[V] { return Descent[V]{} }

// Child returns the child visitor and whether to descend.
func (d Descent[V]) Child() (V, bool) { return d.child, d.descend }

// Visitor receives top-level messages in file order.
//
// Children-capable visits get a Callback that is valid only for the duration
// of that record (child visits included).
type Visitor interface {
	VisitLibraryStats(LibraryStats) error
	VisitRead(Read) error
	VisitMatePair(MatePair) error
	VisitUnitig(Callback, UnitigRecord) (Descent[UnitigVisitor], error)
	VisitUnitigLink(LinkRecord) error
	VisitContig(Callback, ContigRecord) (Descent[ContigVisitor], error)
	VisitContigLink(LinkRecord) error
	VisitScaffold(Callback, ScaffoldRecord) (Descent[ScaffoldVisitor], error)
	VisitSingleContigScaffold(Callback, SingleContigScaffold) error
	VisitScaffoldLink(LinkRecord) error

	// VisitEnd is called once the whole input was consumed.
	VisitEnd() error
	// Halted is called instead of VisitEnd when a halt was requested.
	Halted()
}

// UnitigVisitor receives the read placements of one unitig.
type UnitigVisitor interface {
	VisitReadLayout(ReadPlacement) error
	VisitEnd() error
	Halted()
}

// ContigVisitor receives the sub-blocks of one contig: variants, then read
// placements, then unitig placements.
type ContigVisitor interface {
	VisitVariant(VariantRecord) error
	VisitReadLayout(ReadPlacement) error
	VisitUnitigLayout(UnitigPlacement) error
	VisitEnd() error
	Halted()
}

// ScaffoldVisitor receives the contig pairs of a multi-contig scaffold.
type ScaffoldVisitor interface {
	VisitContigPair(ContigPair) error
	VisitEnd() error
	Halted()
}

// Callback is handed to children-capable visits.
type Callback interface {
	// CanCreateBookmark reports whether CreateBookmark will succeed.
	CanCreateBookmark() bool
	// CreateBookmark returns a bookmark at the start of the current record,
	// or ErrBookmarkUnsupported.
	CreateBookmark() (Bookmark, error)
	// RequestHalt stops the parse at the next boundary.
	RequestHalt()
}

// NopVisitor ignores every message and skips every subtree. Embed it to
// implement only the visits you need.
type NopVisitor struct{}

func (NopVisitor) VisitLibraryStats(LibraryStats) error { return nil }
func (NopVisitor) VisitRead(Read) error                 { return nil }
func (NopVisitor) VisitMatePair(MatePair) error         { return nil }
func (NopVisitor) VisitUnitig(Callback, UnitigRecord) (Descent[UnitigVisitor], error) {
	return Skip[UnitigVisitor](), nil
}
func (NopVisitor) VisitUnitigLink(LinkRecord) error { return nil }
func (NopVisitor) VisitContig(Callback, ContigRecord) (Descent[ContigVisitor], error) {
	return Skip[ContigVisitor](), nil
}
func (NopVisitor) VisitContigLink(LinkRecord) error { return nil }
func (NopVisitor) VisitScaffold(Callback, ScaffoldRecord) (Descent[ScaffoldVisitor], error) {
	return Skip[ScaffoldVisitor](), nil
}
func (NopVisitor) VisitSingleContigScaffold(Callback, SingleContigScaffold) error { return nil }
func (NopVisitor) VisitScaffoldLink(LinkRecord) error                             { return nil }
func (NopVisitor) VisitEnd() error                                                { return nil }
func (NopVisitor) Halted()                                                        {}

// NopContigVisitor ignores every contig sub-block.
type NopContigVisitor struct{}

func (NopContigVisitor) VisitVariant(VariantRecord) error        { return nil }
func (NopContigVisitor) VisitReadLayout(ReadPlacement) error     { return nil }
func (NopContigVisitor) VisitUnitigLayout(UnitigPlacement) error { return nil }
func (NopContigVisitor) VisitEnd() error                         { return nil }
func (NopContigVisitor) Halted()                                 {}

// NopUnitigVisitor ignores every unitig sub-block.
type NopUnitigVisitor struct{}

func (NopUnitigVisitor) VisitReadLayout(ReadPlacement) error { return nil }
func (NopUnitigVisitor) VisitEnd() error                     { return nil }
func (NopUnitigVisitor) Halted()                             {}
