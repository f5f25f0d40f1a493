package curve

// Coords is either Affine or Identity. The set is closed: switches over Coords
// handle exactly these two cases.
type Coords[E FieldElement[E]] interface {
	isCoords()
}

// Affine holds the coordinates of a finite point.
type Affine[E FieldElement[E]] struct {
	X, Y E
}

// Identity is the point at infinity, the neutral element of the group.
type Identity[E FieldElement[E]] struct{}

func (Affine[E]) isCoords()   {}
func (Identity[E]) isCoords() {}
