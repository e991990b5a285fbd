package substances_test

import (
	"github.com/go-test/deep"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"thermo/properties"
	me "thermo/substances"
	"thermo/tables"
	"thermo/units"
)

var _ = Describe("water", func() {
	var table *tables.Table
	var boiling tables.Row

	BeforeEach(func() {
		table = tables.SaturatedWater()
		var err error
		boiling, err = table.FindState(tables.KeyTemperature, 100)
		Expect(err).To(Succeed())
	})

	Context("saturation line", func() {
		It("resolves all columns from a temperature", func() {
			w, err := me.NewSaturationLineWater(table, units.Must(100, units.Celsius))
			Expect(err).To(Succeed())
			Expect(w.Name()).To(Equal(me.SaturationLineWaterName))
			Expect(w.Pressure().Value()).To(Equal(101.42))
			Expect(w.Pressure().Unit()).To(Equal(units.KiloPascal))
			Expect(w.VolumeLiquid().Value()).To(Equal(boiling[tables.VolumeLiquid]))
			Expect(w.VolumeVapor().Value()).To(Equal(boiling[tables.VolumeVapor]))
			Expect(w.EnergyLiquid().Value()).To(Equal(boiling[tables.EnergyLiquid]))
			Expect(w.EnergyVaporization().Value()).To(Equal(boiling[tables.EnergyVaporization]))
			Expect(w.EnergyVapor().Value()).To(Equal(boiling[tables.EnergyVapor]))
			Expect(w.EnthalpyLiquid().Float64()).To(Equal(boiling[tables.EnthalpyLiquid]))
			Expect(w.EnthalpyVaporization().Float64()).To(Equal(boiling[tables.EnthalpyVaporization]))
			Expect(w.EnthalpyVapor().Float64()).To(Equal(boiling[tables.EnthalpyVapor]))
			Expect(w.EntropyLiquid().Value()).To(Equal(boiling[tables.EntropyLiquid]))
			Expect(w.EntropyVaporization().Value()).To(Equal(boiling[tables.EntropyVaporization]))
			Expect(w.EntropyVapor().Dimension()).To(Equal(units.SpecificEntropy))
		})

		It("resolves from other temperature and pressure units", func() {
			w, err := me.NewSaturationLineWater(table, units.Must(1, units.Atmosphere))
			Expect(err).To(Succeed())
			Expect(w.Temperature().Value()).To(BeNumerically("~", 99.97, 0.01))

			w, err = me.NewSaturationLineWater(table, units.Must(373.15, units.Kelvin))
			Expect(err).To(Succeed())
			Expect(w.Pressure().Value()).To(BeNumerically("~", 101.42, 1e-6))
		})

		It("agrees for temperature and pressure keys", func() {
			byT, err := me.NewSaturationLineWater(table, units.Must(100, units.Celsius))
			Expect(err).To(Succeed())
			byP, err := me.NewSaturationLineWater(table, units.Must(101.42, units.KiloPascal))
			Expect(err).To(Succeed())
			Expect(deep.Equal(byT.Row(), byP.Row())).To(BeNil())
		})

		It("rejects ambiguous enthalpies", func() {
			h := properties.MustEnthalpy(units.Must(100, units.KiloJoule))
			_, err := me.NewSaturationLineWater(table, h)
			Expect(err).To(MatchError(tables.ErrUnknownState))
			sh := properties.MustSpecificEnthalpy(units.Must(100, units.KiloJoulePerKilogram))
			_, err = me.NewSaturationLineWater(table, sh)
			Expect(err).To(MatchError(tables.ErrUnknownState))
		})

		It("rejects unsupported dimensions", func() {
			_, err := me.NewSaturationLineWater(table, units.Must(1, units.Kilogram))
			Expect(err).To(MatchError(units.ErrUnitNotSupported))
		})

		It("rejects undefined units", func() {
			_, err := me.NewSaturationLineWater(table, nil)
			Expect(err).To(MatchError(units.ErrUndefinedUnit))
			_, err = me.NewSaturationLineWater(table, units.Quantity{})
			Expect(err).To(MatchError(units.ErrUndefinedUnit))
		})

		It("requires a table", func() {
			_, err := me.NewSaturationLineWater(nil, units.Must(100, units.Celsius))
			Expect(err).To(MatchError(me.ErrNoTable))
		})

		It("rejects states outside the table", func() {
			w, err := me.NewSaturationLineWater(table, units.Must(400, units.Celsius))
			Expect(err).To(MatchError(tables.ErrUnknownState))
			Expect(w).To(BeNil())
		})
	})

	Context("saturated water", func() {
		It("reproduces a pressure row exactly", func() {
			w, err := me.NewSaturatedWater(table, units.Must(101.42, units.KiloPascal))
			Expect(err).To(Succeed())
			Expect(w.Name()).To(Equal(me.SaturatedWaterName))
			Expect(w.Temperature().Value()).To(Equal(100.0))
			Expect(w.Volume().Value()).To(Equal(boiling[tables.VolumeLiquid]))
			Expect(w.Energy().Value()).To(Equal(boiling[tables.EnergyLiquid]))
			Expect(w.Enthalpy().Float64()).To(Equal(boiling[tables.EnthalpyLiquid]))
			Expect(w.Entropy().Value()).To(Equal(boiling[tables.EntropyLiquid]))
			Expect(w.EnthalpyVaporization().Float64()).To(Equal(boiling[tables.EnthalpyVaporization]))
		})

		It("resolves from its specific enthalpy", func() {
			sh := properties.MustSpecificEnthalpy(units.Must(419.17, units.KiloJoulePerKilogram))
			w, err := me.NewSaturatedWater(table, sh)
			Expect(err).To(Succeed())
			Expect(w.Temperature().Value()).To(Equal(100.0))

			sh = properties.MustSpecificEnthalpy(units.Must(400000, units.JoulePerKilogram))
			w, err = me.NewSaturatedWater(table, sh)
			Expect(err).To(Succeed())
			Expect(w.Temperature().Value()).To(BeNumerically(">", 95))
			Expect(w.Temperature().Value()).To(BeNumerically("<", 100))
		})

		It("rejects total enthalpy", func() {
			_, err := me.NewSaturatedWater(table, properties.MustEnthalpy(units.Must(1, units.KiloJoule)))
			Expect(err).To(MatchError(tables.ErrUnknownState))
		})

		It("keeps attributes in the unit algebra", func() {
			w, err := me.NewSaturatedWater(table, units.Must(100, units.Celsius))
			Expect(err).To(Succeed())
			v, err := w.Volume().Mul(units.Must(2, units.Kilogram))
			Expect(err).To(Succeed())
			Expect(v.Dimension()).To(Equal(units.Volume))
			Expect(v.Value()).To(BeNumerically("~", 2*boiling[tables.VolumeLiquid], 1e-12))
		})
	})

	Context("saturated steam", func() {
		It("exposes the vapor columns", func() {
			s, err := me.NewSaturatedSteam(table, units.Must(212, units.Fahrenheit))
			Expect(err).To(Succeed())
			Expect(s.Name()).To(Equal(me.SaturatedSteamName))
			Expect(s.Volume().Value()).To(BeNumerically("~", boiling[tables.VolumeVapor], 1e-9))
			Expect(s.Energy().Value()).To(BeNumerically("~", boiling[tables.EnergyVapor], 1e-6))
			Expect(s.Enthalpy().Float64()).To(BeNumerically("~", boiling[tables.EnthalpyVapor], 1e-6))
			Expect(s.Entropy().Value()).To(BeNumerically("~", boiling[tables.EntropyVapor], 1e-9))
			Expect(s.EnthalpyCondensation().Float64()).To(BeNumerically("~", -boiling[tables.EnthalpyVaporization], 1e-6))
		})

		It("does not resolve from specific enthalpy", func() {
			sh := properties.MustSpecificEnthalpy(units.Must(2675.6, units.KiloJoulePerKilogram))
			_, err := me.NewSaturatedSteam(table, sh)
			Expect(err).To(MatchError(units.ErrUnitNotSupported))
		})
	})
})
