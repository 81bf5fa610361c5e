/*
Copyright SUSE LLC.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package lattice_test

import (
	"fmt"

	"github.com/rancher-sandbox/licy/pkg/lattice"
)

func ExamplePreorder() {
	mit := lattice.Var("MIT")
	isc := lattice.Var("ISC")

	// requiring both licenses entails each one alone
	both := lattice.Meet(mit, isc)
	fmt.Println(lattice.Preorder(both, mit))
	fmt.Println(lattice.Preorder(mit, both))
	// Output:
	// true
	// false
}

func ExampleEquivalent() {
	a := lattice.Join(lattice.Var("MIT"), lattice.Var("ISC"))
	b := lattice.Join(lattice.Var("ISC"), lattice.Var("MIT"))
	fmt.Println(lattice.Equivalent(a, b))
	// Output: true
}
