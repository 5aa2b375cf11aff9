// SPDX-License-Identifier: MIT
package stoich_test

import (
	"fmt"

	"github.com/katalvlaran/stoich"
	"github.com/katalvlaran/stoich/elements"
)

func ExampleBalance() {
	res, err := stoich.Balance("C3H8 + O2 -> CO2 + H2O", elements.Periodic())
	if err != nil {
		fmt.Println(stoich.KindOf(err), err)
		return
	}
	fmt.Println(res)
	// Output:
	// C3H8 + 5O2 -> 3CO2 + 4H2O
}

func ExampleKindOf() {
	_, err := stoich.Balance("H2 + O2 = H2O2 = H2O", elements.Periodic())
	fmt.Println(stoich.KindOf(err))
	fmt.Println(err)
	// Output:
	// malformed_reaction
	// expected exactly 1 =, found 2
}
