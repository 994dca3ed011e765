package position

// Named squares.
var (
	A1 = New('a', 1)
	B1 = New('b', 1)
	C1 = New('c', 1)
	D1 = New('d', 1)
	E1 = New('e', 1)
	F1 = New('f', 1)
	G1 = New('g', 1)
	H1 = New('h', 1)
	A2 = New('a', 2)
	B2 = New('b', 2)
	C2 = New('c', 2)
	D2 = New('d', 2)
	E2 = New('e', 2)
	F2 = New('f', 2)
	G2 = New('g', 2)
	H2 = New('h', 2)
	A3 = New('a', 3)
	B3 = New('b', 3)
	C3 = New('c', 3)
	D3 = New('d', 3)
	E3 = New('e', 3)
	F3 = New('f', 3)
	G3 = New('g', 3)
	H3 = New('h', 3)
	A4 = New('a', 4)
	B4 = New('b', 4)
	C4 = New('c', 4)
	D4 = New('d', 4)
	E4 = New('e', 4)
	F4 = New('f', 4)
	G4 = New('g', 4)
	H4 = New('h', 4)
	A5 = New('a', 5)
	B5 = New('b', 5)
	C5 = New('c', 5)
	D5 = New('d', 5)
	E5 = New('e', 5)
	F5 = New('f', 5)
	G5 = New('g', 5)
	H5 = New('h', 5)
	A6 = New('a', 6)
	B6 = New('b', 6)
	C6 = New('c', 6)
	D6 = New('d', 6)
	E6 = New('e', 6)
	F6 = New('f', 6)
	G6 = New('g', 6)
	H6 = New('h', 6)
	A7 = New('a', 7)
	B7 = New('b', 7)
	C7 = New('c', 7)
	D7 = New('d', 7)
	E7 = New('e', 7)
	F7 = New('f', 7)
	G7 = New('g', 7)
	H7 = New('h', 7)
	A8 = New('a', 8)
	B8 = New('b', 8)
	C8 = New('c', 8)
	D8 = New('d', 8)
	E8 = New('e', 8)
	F8 = New('f', 8)
	G8 = New('g', 8)
	H8 = New('h', 8)
)
