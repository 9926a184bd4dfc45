package domain

// Digraph is an ordered pair of reduced-alphabet letters processed as one
// cipher unit. Digraphs are independent: no state carries between them
// during encoding.
type Digraph [2]byte

// String returns the two letters as a string.
func (d Digraph) String() string { return string(d[:]) }
