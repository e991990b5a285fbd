package tables

import (
	"sync"
)

// SaturatedWaterName is the name of the embedded saturated water table.
const SaturatedWaterName = "saturated_water"

// Saturated water, temperature table. Columns in the order of Row:
// T [°C], P [kPa], vf, vg [m³/kg], uf, ufg, ug, hf, hfg, hg [kJ/kg],
// sf, sfg, sg [kJ/(kg·K)].
var saturatedWaterRows = []Row{
	{0.01, 0.6117, 0.001000, 206.00, 0.000, 2374.9, 2374.9, 0.001, 2500.9, 2500.9, 0.0000, 9.1556, 9.1556},
	{5, 0.8725, 0.001000, 147.03, 21.019, 2360.8, 2381.8, 21.020, 2489.1, 2510.1, 0.0763, 8.9487, 9.0249},
	{10, 1.2281, 0.001000, 106.32, 42.020, 2346.6, 2388.7, 42.022, 2477.2, 2519.2, 0.1511, 8.7488, 8.8999},
	{15, 1.7057, 0.001001, 77.885, 62.980, 2332.5, 2395.5, 62.982, 2465.4, 2528.3, 0.2245, 8.5559, 8.7803},
	{20, 2.3392, 0.001002, 57.762, 83.913, 2318.4, 2402.3, 83.915, 2453.5, 2537.4, 0.2965, 8.3696, 8.6661},
	{25, 3.1698, 0.001003, 43.340, 104.83, 2304.3, 2409.1, 104.83, 2441.7, 2546.5, 0.3672, 8.1895, 8.5567},
	{30, 4.2469, 0.001004, 32.879, 125.73, 2290.2, 2415.9, 125.74, 2429.8, 2555.6, 0.4368, 8.0152, 8.4520},
	{35, 5.6291, 0.001006, 25.205, 146.63, 2276.0, 2422.7, 146.64, 2417.9, 2564.6, 0.5051, 7.8466, 8.3517},
	{40, 7.3851, 0.001008, 19.515, 167.53, 2261.9, 2429.4, 167.53, 2406.0, 2573.5, 0.5724, 7.6832, 8.2556},
	{45, 9.5953, 0.001010, 15.251, 188.43, 2247.7, 2436.1, 188.44, 2394.0, 2582.4, 0.6386, 7.5247, 8.1633},
	{50, 12.352, 0.001012, 12.026, 209.33, 2233.4, 2442.7, 209.34, 2382.0, 2591.3, 0.7038, 7.3710, 8.0748},
	{55, 15.763, 0.001015, 9.5639, 230.24, 2219.1, 2449.3, 230.26, 2369.8, 2600.1, 0.7680, 7.2218, 7.9898},
	{60, 19.947, 0.001017, 7.6670, 251.16, 2204.7, 2455.9, 251.18, 2357.7, 2608.8, 0.8313, 7.0769, 7.9082},
	{65, 25.043, 0.001020, 6.1935, 272.09, 2190.3, 2462.4, 272.12, 2345.4, 2617.5, 0.8937, 6.9360, 7.8296},
	{70, 31.202, 0.001023, 5.0396, 293.04, 2175.8, 2468.9, 293.07, 2333.0, 2626.1, 0.9551, 6.7989, 7.7540},
	{75, 38.597, 0.001026, 4.1291, 313.99, 2161.3, 2475.3, 314.03, 2320.6, 2634.6, 1.0158, 6.6655, 7.6812},
	{80, 47.416, 0.001029, 3.4053, 334.97, 2146.6, 2481.6, 335.02, 2308.0, 2643.0, 1.0756, 6.5355, 7.6111},
	{85, 57.868, 0.001032, 2.8261, 355.96, 2131.9, 2487.8, 356.02, 2295.3, 2651.4, 1.1346, 6.4089, 7.5435},
	{90, 70.183, 0.001036, 2.3593, 376.97, 2117.0, 2494.0, 377.04, 2282.5, 2659.6, 1.1929, 6.2853, 7.4782},
	{95, 84.609, 0.001040, 1.9808, 398.00, 2102.0, 2500.1, 398.09, 2269.6, 2667.6, 1.2504, 6.1647, 7.4151},
	{100, 101.42, 0.001043, 1.6720, 419.06, 2087.0, 2506.0, 419.17, 2256.4, 2675.6, 1.3072, 6.0470, 7.3542},
	{110, 143.38, 0.001052, 1.2094, 461.27, 2056.4, 2517.7, 461.42, 2229.7, 2691.1, 1.4188, 5.8193, 7.2382},
	{120, 198.67, 0.001060, 0.89133, 503.60, 2025.3, 2528.9, 503.81, 2202.1, 2705.9, 1.5279, 5.6012, 7.1291},
	{130, 270.28, 0.001070, 0.66808, 546.10, 1993.4, 2539.5, 546.38, 2173.7, 2720.1, 1.6346, 5.3918, 7.0264},
	{140, 361.53, 0.001080, 0.50850, 588.77, 1960.9, 2549.6, 589.16, 2144.1, 2733.5, 1.7392, 5.1901, 6.9293},
	{150, 476.16, 0.001091, 0.39248, 631.66, 1927.4, 2559.1, 632.18, 2113.8, 2745.9, 1.8418, 4.9953, 6.8371},
	{160, 618.23, 0.001102, 0.30680, 674.79, 1893.0, 2567.8, 675.47, 2082.0, 2757.5, 1.9426, 4.8066, 6.7491},
	{170, 792.18, 0.001114, 0.24259, 718.20, 1857.5, 2575.7, 719.08, 2049.2, 2768.3, 2.0417, 4.6233, 6.6650},
	{180, 1002.8, 0.001127, 0.19384, 761.92, 1820.9, 2582.8, 763.05, 2014.2, 2777.2, 2.1392, 4.4448, 6.5840},
	{190, 1255.2, 0.001141, 0.15636, 806.00, 1783.0, 2589.0, 807.43, 1977.9, 2785.3, 2.2355, 4.2704, 6.5059},
	{200, 1554.9, 0.001157, 0.12721, 850.46, 1743.7, 2594.2, 852.26, 1939.8, 2792.0, 2.3305, 4.0997, 6.4302},
	{220, 2319.6, 0.001190, 0.086094, 940.75, 1660.2, 2601.0, 943.51, 1857.4, 2800.9, 2.5177, 3.7663, 6.2840},
	{240, 3346.9, 0.001229, 0.059707, 1033.4, 1568.7, 2602.1, 1037.5, 1765.1, 2802.6, 2.7020, 3.4400, 6.1420},
	{260, 4692.3, 0.001276, 0.042168, 1128.5, 1468.0, 2596.5, 1134.5, 1661.8, 2796.3, 2.8848, 3.1149, 5.9998},
	{280, 6416.6, 0.001332, 0.030023, 1227.2, 1355.4, 2582.6, 1235.8, 1544.2, 2780.0, 3.0683, 2.7842, 5.8525},
	{300, 8587.9, 0.001404, 0.021659, 1331.0, 1228.9, 2559.9, 1343.3, 1406.0, 2749.3, 3.2552, 2.4538, 5.7090},
	{320, 11284, 0.001499, 0.015488, 1444.4, 1080.9, 2525.3, 1461.3, 1238.5, 2699.7, 3.4495, 2.0898, 5.5393},
	{340, 14601, 0.001638, 0.010803, 1569.7, 894.3, 2464.0, 1593.6, 1027.4, 2621.0, 3.6605, 1.6706, 5.3311},
	{360, 18666, 0.001895, 0.006950, 1725.6, 626.3, 2351.9, 1761.0, 720.1, 2481.1, 3.9167, 1.1359, 5.0526},
	{373.95, 22064, 0.003106, 0.003106, 2015.7, 0, 2015.7, 2084.3, 0, 2084.3, 4.4070, 0, 4.4070},
}

// SaturatedWaterIndexes are the lookup keys of the saturated water table.
var SaturatedWaterIndexes = []Option{
	WithIndex(KeyTemperature, Temperature),
	WithIndex(KeyPressure, Pressure),
	WithIndex(KeyEnthalpyLiquid, EnthalpyLiquid),
}

var saturatedWater = sync.OnceValue(func() *Table {
	t, err := New(SaturatedWaterName, saturatedWaterRows, SaturatedWaterIndexes...)
	if err != nil {
		panic(err)
	}
	return t
})

// SaturatedWater returns the shared saturated water table indexed by
// temperature, pressure and liquid enthalpy.
func SaturatedWater() *Table {
	return saturatedWater()
}
