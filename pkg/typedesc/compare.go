package typedesc

// Less is a strict weak ordering over element type descriptors. It must
// never inspect slot values; orderings are derived from type facts alone.
type Less func(a, b Desc) bool

// BySize orders types by byte size, smallest first.
func BySize(a, b Desc) bool { return a.Size() < b.Size() }

// ByAlign orders types by alignment requirement, smallest first.
func ByAlign(a, b Desc) bool { return a.Align() < b.Align() }

// ByName orders types lexically by their full spelling (String), so
// unnamed types participate too.
func ByName(a, b Desc) bool { return a.String() < b.String() }

// ByKind orders types by reflect kind.
func ByKind(a, b Desc) bool { return a.Kind() < b.Kind() }
