// This file is part of nstfront.
//
// nstfront is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nstfront is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nstfront.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// group is the set of key/value pairs pushed by one call to
// PushCommandLineStack.
type group map[string]Value

func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s::%v", k, g[k])
	}
	return b.String()
}

var stack []group

func top() group {
	if len(stack) == 0 {
		return nil
	}
	return stack[len(stack)-1]
}

// PushCommandLineStack parses a string of the form "key::value; key::value"
// and adds it to the stack as a new group. Malformed pairs are ignored.
func PushCommandLineStack(prefs string) {
	g := make(group)
	for _, p := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(p, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		g[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	stack = append(stack, g)
}

// PopCommandLineStack forgets the most recent group. Returns the unused
// preferences of the group, sorted by key.
func PopCommandLineStack() string {
	g := top()
	if g == nil {
		return ""
	}
	stack = stack[:len(stack)-1]
	return g.String()
}

// GetCommandLinePref returns the value for key from the top of the stack. The
// value is removed from the group once it has been returned.
func GetCommandLinePref(key string) (bool, Value) {
	g := top()
	v, ok := g[key]
	if ok {
		delete(g, key)
	}
	return ok, v
}
