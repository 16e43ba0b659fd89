package golednet_test

import (
	. "github.com/pdf/golednet"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tokens", func() {
	candidates := []string{`color`, `cct`, `brightness`, `exact`}

	Describe("ResolveToken", func() {
		It("should accept an exact match", func() {
			Expect(ResolveToken(`color`, candidates)).To(Equal(`color`))
		})

		It("should accept an unambiguous prefix", func() {
			Expect(ResolveToken(`b`, candidates)).To(Equal(`brightness`))
			Expect(ResolveToken(`e`, candidates)).To(Equal(`exact`))
			Expect(ResolveToken(`col`, candidates)).To(Equal(`color`))
		})

		It("should be case-insensitive", func() {
			Expect(ResolveToken(`BRIGHT`, candidates)).To(Equal(`brightness`))
		})

		It("should reject an ambiguous prefix", func() {
			_, err := ResolveToken(`c`, candidates)
			Expect(err).To(BeAssignableToTypeOf(&AmbiguousTokenError{}))
		})

		It("should reject an unknown token", func() {
			_, err := ResolveToken(`full`, candidates)
			Expect(err).To(BeAssignableToTypeOf(&UnknownTokenError{}))
		})

		It("should prefer an exact match over a longer candidate", func() {
			set := []string{`on`, `online`}
			Expect(ResolveToken(`on`, set)).To(Equal(`on`))
		})
	})

	Describe("Prefixes", func() {
		It("should return every unambiguous proper prefix", func() {
			Expect(Prefixes(`brightness`, candidates)).To(Equal(
				[]string{`b`, `br`, `bri`, `brig`, `brigh`, `bright`, `brightn`, `brightne`, `brightnes`},
			))
		})

		It("should skip prefixes shared with other candidates", func() {
			prefixes := Prefixes(`color`, candidates)
			Expect(prefixes).NotTo(ContainElement(`c`))
			Expect(prefixes).To(ContainElement(`co`))
		})
	})
})
