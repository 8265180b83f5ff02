package optics_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fringe/internal/optics"
)

// Value of the pattern at x = ±5 mm for the default setup, where β lands on 2π.
const edgeIntensity = 5.940638626117705e-32

var _ = Describe("Intensity", func() {
	var (
		p    optics.Params
		grid optics.Grid
	)

	BeforeEach(func() {
		p = optics.DefaultParams()
		grid = optics.DefaultGrid()
	})

	It("returns one value per grid position", func() {
		curve, err := optics.Intensity(p, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(curve).To(HaveLen(optics.GridSamples))
	})

	It("stays within [0, 1]", func() {
		setups := []optics.Params{
			p,
			{Wavelength: 100e-9, SlitWidth: 1e-3, ScreenDistance: 0.1, SlitSeparation: 10e-3},
			{Wavelength: 1000e-9, SlitWidth: 10e-6, ScreenDistance: 1, SlitSeparation: 0.1e-3},
			{Wavelength: 633e-9, SlitWidth: 37e-6, ScreenDistance: 0.73, SlitSeparation: 0.25e-3},
		}
		for _, s := range setups {
			curve, err := optics.Intensity(s, grid)
			Expect(err).NotTo(HaveOccurred())
			for _, v := range curve {
				Expect(v).To(BeNumerically(">=", 0))
				Expect(v).To(BeNumerically("<=", 1))
			}
		}
	})

	It("is deterministic", func() {
		a, err := optics.Intensity(p, grid)
		Expect(err).NotTo(HaveOccurred())
		b, err := optics.Intensity(p, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(a).To(Equal(b))
	})

	It("is even in x", func() {
		neg := make(optics.Grid, len(grid))
		for i, x := range grid {
			neg[i] = -x
		}
		a, _ := optics.Intensity(p, grid)
		b, _ := optics.Intensity(p, neg)
		Expect(a).To(Equal(b))

		for i := range a {
			Expect(a[i]).To(BeNumerically("~", a[len(a)-1-i], 1e-12))
		}
	})

	It("peaks at 1 on the optical axis", func() {
		curve, err := optics.Intensity(p, optics.Linspace(-1e-3, 1e-3, 3))
		Expect(err).NotTo(HaveOccurred())
		Expect(curve[1]).To(Equal(1.0))
	})

	It("is close to 1 at the samples next to the axis", func() {
		curve, _ := optics.Intensity(p, grid)
		Expect(curve[499]).To(BeNumerically("~", 0.996036330259946, 1e-12))
		Expect(curve[500]).To(BeNumerically("~", curve[499], 1e-12))
	})

	It("matches the reference value at both edges of the grid", func() {
		curve, _ := optics.Intensity(p, grid)
		first, last := curve[0], curve[len(curve)-1]
		Expect(first).To(Equal(last))
		Expect(first).To(BeNumerically("~", edgeIntensity, 1e-36))
	})

	It("does not modify the grid", func() {
		before := grid.Clone()
		_, err := optics.Intensity(p, grid)
		Expect(err).NotTo(HaveOccurred())
		Expect(grid).To(Equal(before))
	})

	It("is the product of envelope and interference", func() {
		curve, _ := optics.Intensity(p, grid)
		env, _ := optics.Envelope(p, grid)
		fringes, _ := optics.Interference(p, grid)
		for i := range curve {
			Expect(curve[i]).To(BeNumerically("~", env[i]*fringes[i], 1e-15))
		}
	})

	It("puts dark fringes half a spacing off axis", func() {
		spacing := p.Wavelength * p.ScreenDistance / p.SlitSeparation
		curve, _ := optics.Intensity(p, optics.Grid{spacing / 2})
		Expect(curve[0]).To(BeNumerically("<", 1e-20))
	})

	Describe("Envelope", func() {
		It("does not depend on slit separation", func() {
			a, err := optics.Envelope(p, grid)
			Expect(err).NotTo(HaveOccurred())
			wide := p
			wide.SlitSeparation = 7.5e-3
			b, err := optics.Envelope(wide, grid)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		})

		It("has its first zero at λL/a", func() {
			zero := p.Wavelength * p.ScreenDistance / p.SlitWidth
			env, _ := optics.Envelope(p, optics.Grid{zero})
			Expect(env[0]).To(BeNumerically("<", 1e-25))
		})
	})

	Describe("Interference", func() {
		It("changes spatial frequency with slit separation", func() {
			a, _ := optics.Interference(p, grid)
			double := p
			double.SlitSeparation *= 2
			b, _ := optics.Interference(double, grid)
			Expect(a).NotTo(Equal(b))

			spacing := p.Wavelength * p.ScreenDistance / double.SlitSeparation
			c, _ := optics.Interference(double, optics.Grid{spacing / 2, spacing})
			Expect(c[0]).To(BeNumerically("<", 1e-20))
			Expect(c[1]).To(BeNumerically("~", 1, 1e-12))
		})
	})

	DescribeTable("rejects invalid parameters",
		func(mutate func(*optics.Params), message string) {
			mutate(&p)
			_, err := optics.Intensity(p, grid)
			Expect(err).To(MatchError(optics.ErrParameterBounds))
			Expect(err.Error()).To(Equal(message))

			var perr *optics.ParamError
			Expect(err).To(BeAssignableToTypeOf(perr))
		},
		Entry("zero wavelength", func(p *optics.Params) { p.Wavelength = 0 }, "non-positive wavelength"),
		Entry("negative slit width", func(p *optics.Params) { p.SlitWidth = -1e-6 }, "non-positive slit width"),
		Entry("zero screen distance", func(p *optics.Params) { p.ScreenDistance = 0 }, "non-positive screen distance"),
		Entry("negative separation", func(p *optics.Params) { p.SlitSeparation = -1 }, "non-positive slit separation"),
		Entry("NaN wavelength", func(p *optics.Params) { p.Wavelength = math.NaN() }, "non-finite wavelength"),
		Entry("infinite distance", func(p *optics.Params) { p.ScreenDistance = math.Inf(1) }, "non-finite screen distance"),
		Entry("underflowing λL", func(p *optics.Params) {
			p.Wavelength, p.ScreenDistance = 1e-200, 1e-200
		}, "non-finite phase coefficient"),
		Entry("overflowing λL", func(p *optics.Params) {
			p.Wavelength, p.ScreenDistance = 1e200, 1e200
		}, "non-positive phase coefficient"),
		Entry("overflowing phase", func(p *optics.Params) {
			p.Wavelength, p.ScreenDistance, p.SlitWidth = 1e-150, 1e-150, 1e10
		}, "non-finite phase"),
	)

	It("keeps every sample in [0, 1] near the phase limits", func() {
		tight := optics.Params{Wavelength: 1e-150, SlitWidth: 1e-4, ScreenDistance: 1e-150, SlitSeparation: 1e-3}
		curve, err := optics.Intensity(tight, grid)
		Expect(err).NotTo(HaveOccurred())
		for _, v := range curve {
			Expect(v).To(BeNumerically(">=", 0))
			Expect(v).To(BeNumerically("<=", 1))
		}
	})

	It("rejects an empty grid", func() {
		_, err := optics.Intensity(p, optics.Grid{})
		Expect(err).To(MatchError(optics.ErrEmptyGrid))
	})
})
