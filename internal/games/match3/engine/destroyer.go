package engine

// DestroyerID identifies a destroyer projectile.
type DestroyerID uint64

// Destroyer is the projectile a line bonus fires. It is not a grid
// resident: it lives until its travel effect settles.
type Destroyer struct {
	ID          DestroyerID
	Origin      Coord
	Step        Coord // unit direction of travel
	Destination Coord // first cell past the board edge
	Speed       float64

	travel EffectID
}

// TravelTime returns the seconds needed to reach the destination.
func (d Destroyer) TravelTime() float64 {
	return d.Origin.Vec().Dist(d.Destination.Vec()) / d.Speed
}

// Path returns the on-board cells the destroyer crosses, in travel order,
// excluding its origin.
func (d Destroyer) Path() []Coord {
	var path []Coord
	for c := d.Origin.Add(d.Step.X, d.Step.Y); c.InBounds(); c = c.Add(d.Step.X, d.Step.Y) {
		path = append(path, c)
	}
	return path
}

// ArrivalDelay returns the seconds until the destroyer reaches c.
func (d Destroyer) ArrivalDelay(c Coord) float64 {
	return d.Origin.Vec().Dist(c.Vec()) / d.Speed
}

func destroyerSteps(o Orientation) [2]Coord {
	if o == Vertical {
		return [2]Coord{C(0, -1), C(0, 1)}
	}
	return [2]Coord{C(-1, 0), C(1, 0)}
}

// edgeDestination returns the first off-board cell from origin along step.
func edgeDestination(origin, step Coord) Coord {
	switch {
	case step.X < 0:
		return C(-1, origin.Y)
	case step.X > 0:
		return C(Size, origin.Y)
	case step.Y < 0:
		return C(origin.X, -1)
	default:
		return C(origin.X, Size)
	}
}
