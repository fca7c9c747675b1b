package opmatrix

// Cell values of the three table families.
const (
	n   = int(Unit)
	nn  = int(Double)
	nnn = int(Triple)
)

var addUnit = Matrix{
	{0, 0, n, 0, 0},
	{0, 0, n, 0, 0},
	{n, n, n, n, n},
	{0, 0, n, 0, 0},
	{0, 0, n, 0, 0},
}

var subtractUnit = Matrix{
	{0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0},
	{n, n, n, n, n},
	{0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0},
}

var multiplyUnit = Matrix{
	{n, 0, n, 0, n},
	{0, n, n, n, 0},
	{0, 0, n, 0, 0},
	{0, n, n, n, 0},
	{n, 0, n, 0, n},
}

var divideUnit = Matrix{
	{0, 0, 0, 0, n},
	{0, 0, 0, n, 0},
	{0, 0, n, 0, 0},
	{0, n, 0, 0, 0},
	{n, 0, 0, 0, 0},
}

var moduloUnit = Matrix{
	{n, 0, 0, 0, n},
	{0, 0, 0, n, 0},
	{0, 0, n, 0, 0},
	{0, n, 0, 0, 0},
	{n, 0, 0, 0, n},
}

var powerUnit = Matrix{
	{0, 0, n, 0, 0},
	{0, n, 0, n, 0},
	{n, 0, 0, 0, n},
	{0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0},
}

var leftK = Matrix{
	{n, 0, 0, n, 0},
	{n, 0, n, 0, 0},
	{n, n, 0, 0, 0},
	{n, 0, n, 0, 0},
	{n, 0, 0, n, 0},
}

var rightK = Matrix{
	{0, n, 0, 0, n},
	{0, n, 0, n, 0},
	{0, n, n, 0, 0},
	{0, n, 0, n, 0},
	{0, n, 0, 0, n},
}

var midK = Matrix{
	{n, 0, 0, 0, n},
	{n, 0, 0, n, 0},
	{n, n, n, 0, 0},
	{n, 0, 0, n, 0},
	{n, 0, 0, 0, n},
}

// The scale-2 and scale-3 tables carry their own shapes; they are not the
// unit tables multiplied through.

var multiplyDouble = Matrix{
	{nn, nn, nn, nn, nn},
	{0, nn, 0, nn, 0},
	{0, nn, 0, nn, 0},
	{0, nn, 0, nn, 0},
	{0, nn, 0, nn, 0},
}

var sumTriple = Matrix{
	{nnn, nnn, nnn, nnn, nnn},
	{0, nnn, 0, 0, 0},
	{0, 0, nnn, 0, 0},
	{0, nnn, 0, 0, 0},
	{nnn, nnn, nnn, nnn, nnn},
}
