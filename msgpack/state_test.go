package thermomsgpack_test

import (
	"github.com/go-test/deep"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/vmihailenco/msgpack/v5"

	me "thermo/msgpack"
	"thermo/substances"
	"thermo/tables"
	"thermo/units"
)

var _ = Describe("wire", func() {
	var table *tables.Table

	BeforeEach(func() {
		table = tables.SaturatedWater()
	})

	Context("quantities", func() {
		It("keeps unit and value", func() {
			q := units.Must(101.42, units.KiloPascal)
			w := me.NewQuantity(q)
			Expect(w).To(Equal(me.Quantity{Dimension: string(units.Pressure), Unit: string(units.KiloPascal), Value: 101.42}))

			data, err := msgpack.Marshal(&w)
			Expect(err).To(Succeed())
			var back me.Quantity
			Expect(msgpack.Unmarshal(data, &back)).To(Succeed())
			r, err := me.ToQuantity(&back)
			Expect(err).To(Succeed())
			Expect(r).To(Equal(q))
		})

		It("rejects a dimension not matching the unit", func() {
			_, err := me.ToQuantity(&me.Quantity{Dimension: string(units.Mass), Unit: string(units.Liter), Value: 1})
			Expect(err).To(MatchError(units.ErrUnitMismatch))
			_, err = me.ToQuantity(&me.Quantity{Unit: "furlong", Value: 1})
			Expect(err).To(MatchError(units.ErrUnitNotSupported))
		})
	})

	Context("states", func() {
		It("resolves a transmitted state again", func() {
			w, err := substances.NewSaturatedWater(table, units.Must(50, units.Celsius))
			Expect(err).To(Succeed())

			data, err := me.Encode(w)
			Expect(err).To(Succeed())
			var s me.State
			Expect(msgpack.Unmarshal(data, &s)).To(Succeed())
			Expect(s.Substance).To(Equal(substances.SaturatedWaterName))
			Expect(s.Row).To(HaveLen(int(tables.NumColumns)))

			r, err := me.ToState(table, &s)
			Expect(err).To(Succeed())
			Expect(r).To(BeAssignableToTypeOf(&substances.SaturatedWater{}))
			Expect(deep.Equal(r.Row(), w.Row())).To(BeNil())
		})

		It("rejects unknown substances", func() {
			s := me.State{Substance: "mercury", Temperature: me.Quantity{Unit: string(units.Celsius), Value: 20}}
			_, err := me.ToState(table, &s)
			Expect(err).To(MatchError(me.ErrUnknownSubstance))
		})
	})

	Context("stream", func() {
		var data []byte

		BeforeEach(func() {
			line, err := substances.NewSaturationLineWater(table, units.Must(100, units.Celsius))
			Expect(err).To(Succeed())
			steam, err := substances.NewSaturatedSteam(table, units.Must(200, units.KiloPascal))
			Expect(err).To(Succeed())
			data, err = me.Encode(line, steam)
			Expect(err).To(Succeed())
		})

		It("decodes back to back states", func() {
			var sb me.StateBuffer
			states, err := sb.Feed(data)
			Expect(err).To(Succeed())
			Expect(states).To(HaveLen(2))
			Expect(states[0].Substance).To(Equal(substances.SaturationLineWaterName))
			Expect(states[1].Substance).To(Equal(substances.SaturatedSteamName))
			Expect(sb.Pending()).To(Equal(0))
		})

		It("keeps incomplete data for the next feed", func() {
			var sb me.StateBuffer
			cut := len(data) - 5
			states, err := sb.Feed(data[:cut])
			Expect(err).To(Succeed())
			Expect(states).To(HaveLen(1))
			Expect(sb.Pending()).To(BeNumerically(">", 0))

			states, err = sb.Feed(data[cut:])
			Expect(err).To(Succeed())
			Expect(states).To(HaveLen(1))
			Expect(states[0].Substance).To(Equal(substances.SaturatedSteamName))
			Expect(states[0].Pressure.Value).To(BeNumerically("~", 200, 1e-9))
			Expect(sb.Pending()).To(Equal(0))
		})
	})
})
