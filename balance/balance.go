package balance

// Profile maps a node ID to a quantity (supply or demand) for one
// timestep.
type Profile map[string]float64

// Reserved keys for injected dummy terms. They are deliberately not
// ordinary node IDs; model building ignores profile keys outside the
// network's node set.
const (
	DummySupplyNode = "DummySupply"
	DummyDemandNode = "DummyDemand"
)

// Tolerance below which two totals are considered equal.
const Tolerance = 1e-9

// State classifies the supply/demand relation of one timestep.
type State int

const (
	// Balanced: total supply equals total demand within Tolerance.
	Balanced State = iota
	// Surplus: supply exceeded demand; a dummy demand term was added.
	Surplus
	// Shortage: demand exceeded supply; a dummy supply term was added.
	Shortage
)

// String returns the report label of the state.
func (s State) String() string {
	switch s {
	case Surplus:
		return "SURPLUS"
	case Shortage:
		return "SHORTAGE"
	default:
		return "BALANCED"
	}
}

// Result holds the balanced profiles of one timestep.
// Post-condition: Sum(Supply) == Sum(Demand) within Tolerance.
type Result struct {
	Supply      Profile
	Demand      Profile
	State       State
	TotalSupply float64 // before any dummy injection
	TotalDemand float64 // before any dummy injection
}

// Sum returns the total quantity of a profile. Addition commutes, so
// map iteration order cannot affect the result beyond floating-point
// rounding of the same magnitude class.
func Sum(p Profile) float64 {
	var total float64
	for _, v := range p {
		total += v
	}

	return total
}

// Balance reconciles supply against demand for a single timestep.
//
// It returns fresh copies of both profiles with at most one dummy term
// injected on the deficient side, and the resulting State. The inputs
// are never modified.
func Balance(supply, demand Profile) Result {
	res := Result{
		Supply:      clone(supply),
		Demand:      clone(demand),
		TotalSupply: Sum(supply),
		TotalDemand: Sum(demand),
	}

	diff := res.TotalSupply - res.TotalDemand
	switch {
	case diff > Tolerance:
		res.Demand[DummyDemandNode] = diff
		res.State = Surplus
	case diff < -Tolerance:
		res.Supply[DummySupplyNode] = -diff
		res.State = Shortage
	default:
		res.State = Balanced
	}

	return res
}

func clone(p Profile) Profile {
	out := make(Profile, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}
