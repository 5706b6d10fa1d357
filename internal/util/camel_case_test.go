/**
 * Copyright (c) 2020, The Calyx Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util_test

import (
	"github.com/calyxql/calyx/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("CamelCase", func() {
	It("converts string to camelCase", func() {
		testcases := map[string]string{
			"":             "",
			"a":            "a",
			"foo":          "foo",
			"A":            "a",
			"FOO":          "fOO",
			"camelCase":    "camelCase",
			"Foo_Bar":      "fooBar",
			"foo_bar":      "fooBar",
			"foo_bar_":     "fooBar",
			"_foo_bar":     "fooBar",
			"_foo_bar_":    "fooBar",
			"___foo_bar":   "fooBar",
			"foo___bar":    "fooBar",
			"foo_bar___":   "fooBar",
			"foo1_bar2":    "foo1Bar2",
			"display_name": "displayName",
		}

		for s, expected := range testcases {
			Expect(util.CamelCase(s)).Should(Equal(expected), "%s", s)
		}
	})
})
