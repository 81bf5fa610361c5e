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

package spdx

var exceptions = map[ExceptionID]struct{}{
	"389-exception":                {},
	"Autoconf-exception-2.0":       {},
	"Autoconf-exception-3.0":       {},
	"Bison-exception-2.2":          {},
	"Classpath-exception-2.0":      {},
	"FLTK-exception":               {},
	"Font-exception-2.0":           {},
	"GCC-exception-2.0":            {},
	"GCC-exception-3.1":            {},
	"LLVM-exception":               {},
	"Libtool-exception":            {},
	"Linux-syscall-note":           {},
	"OCaml-LGPL-linking-exception": {},
	"Qt-GPL-exception-1.0":         {},
	"WxWindows-exception-3.1":      {},
	"openvpn-openssl-exception":    {},
}

// LookupException returns the registered exception for the given identifier.
func LookupException(id string) (ExceptionID, bool) {
	e := ExceptionID(id)
	_, ok := exceptions[e]
	return e, ok
}
