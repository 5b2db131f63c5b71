package sum

// Unit is the type with a single value. It marks absence (see None) and is the
// payload of results produced by side-effecting computations.
type Unit struct{}

// None is the absent marker shared by the whole process.
var None = Unit{}

// Equal reports whether other is Unit or an absent value of any family
// instantiation, e.g. maybe.Nothing[int]().
func (Unit) Equal(other any) bool {
	switch o := other.(type) {
	case Unit:
		return true
	case Absent:
		return o.IsNothing()
	default:
		return false
	}
}

func (Unit) Hash() uint64 {
	return 0
}

func (Unit) String() string {
	return "Nothing"
}
