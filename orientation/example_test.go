// SPDX-License-Identifier: MIT

package orientation_test

import (
	"fmt"

	"github.com/CCP-NC/pastensor/orientation"
	"github.com/CCP-NC/pastensor/tensor"
)

// ExampleFromTensor extracts the orientation of a diagonal shielding
// tensor under the ascending eigenvalue order.
func ExampleFromTensor() {
	t, err := tensor.New([][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, -6},
	})
	if err != nil {
		fmt.Println("construction failed:", err)
		return
	}
	e, _, err := orientation.FromTensor(t, orientation.WithDegrees(true))
	if err != nil {
		fmt.Println("extraction failed:", err)
		return
	}
	fmt.Printf("alpha beta gamma: %.1f %.1f %.1f\n", e.Alpha, e.Beta, e.Gamma)
	// Output:
	// alpha beta gamma: 270.0 90.0 0.0
}

// ExampleEquivalentSet lists the four triples describing one physical
// orientation of a symmetric tensor.
func ExampleEquivalentSet() {
	set := orientation.EquivalentSet(
		orientation.Euler{Alpha: 50, Beta: 60, Gamma: 70},
		orientation.WithDegrees(true))
	for _, e := range set {
		fmt.Printf("%.0f %.0f %.0f\n", e.Alpha, e.Beta, e.Gamma)
	}
	// Output:
	// 50 60 70
	// 50 60 250
	// 230 120 110
	// 230 120 290
}
