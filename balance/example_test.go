package balance_test

import (
	"fmt"

	"github.com/hydroflow/hydroflow/balance"
)

// ExampleBalance reconciles a surplus timestep: the excess supply is
// mirrored as a dummy demand term so the totals match.
func ExampleBalance() {
	supply := balance.Profile{"Reservoir": 8}
	demand := balance.Profile{"City": 5}

	res := balance.Balance(supply, demand)

	fmt.Println("state:", res.State)
	fmt.Println("dummy demand:", res.Demand[balance.DummyDemandNode])
	fmt.Println("totals:", balance.Sum(res.Supply), "=", balance.Sum(res.Demand))
	// Output:
	// state: SURPLUS
	// dummy demand: 3
	// totals: 8 = 8
}
