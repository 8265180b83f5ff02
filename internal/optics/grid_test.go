package optics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fringe/internal/optics"
)

var _ = Describe("Grid", func() {
	It("spans [-5, 5] mm with 1000 samples", func() {
		g := optics.DefaultGrid()
		Expect(g).To(HaveLen(1000))
		Expect(g[0]).To(Equal(-0.005))
		Expect(g[len(g)-1]).To(Equal(0.005))
		Expect(g.Step()).To(BeNumerically("~", 0.01/999, 1e-18))
	})

	It("is evenly spaced and increasing", func() {
		g := optics.DefaultGrid()
		step := g.Step()
		for i := 1; i < len(g); i++ {
			Expect(g[i] - g[i-1]).To(BeNumerically("~", step, 1e-15))
		}
	})

	It("hands out independent copies", func() {
		a := optics.DefaultGrid()
		a[0] = 42
		Expect(optics.DefaultGrid()[0]).To(Equal(-0.005))
	})

	It("handles degenerate sizes", func() {
		Expect(optics.Linspace(0, 1, 0)).To(BeEmpty())
		Expect(optics.Linspace(2, 3, 1)).To(Equal(optics.Grid{2}))
		Expect(optics.Linspace(-1, 1, 3)).To(Equal(optics.Grid{-1, 0, 1}))
	})

	It("converts to millimetres", func() {
		mm := optics.Grid{-0.005, 0.001}.Millimetres()
		Expect(mm[0]).To(BeNumerically("~", -5, 1e-12))
		Expect(mm[1]).To(BeNumerically("~", 1, 1e-12))
	})
})
