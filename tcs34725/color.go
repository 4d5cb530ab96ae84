package tcs34725

// Raw-to-derived color transforms. The coefficients come from the TAOS
// designer's notebook: the sensor RGB response curves are mapped to CIE
// tristimulus values and McCamy's CCT approximation is pre-substituted into
// sensor space. They are empirical constants for this chip family.

// Lux computes illuminance from the raw channels. The result is truncated
// to 16 bits; negative or overflowing values wrap per integer conversion,
// an accepted limitation of the fixed-point output format.
func Lux(r, g, b uint16) uint16 {
	lux := -0.32466*float32(r) + 1.57837*float32(g) - 0.73191*float32(b)
	return uint16(int32(lux))
}

// ColorTemperature computes the correlated color temperature in Kelvin
// using McCamy's formula. CCT only characterizes near-white light; readings
// far off the white locus produce meaningless values. A zero denominator
// (degenerate chromaticity) yields 0.
func ColorTemperature(r, g, b uint16) uint16 {
	num := 0.23881*float32(r) + 0.25499*float32(g) - 0.58291*float32(b)
	den := 0.11109*float32(r) - 0.85406*float32(g) + 0.52289*float32(b)
	if den == 0 {
		return 0
	}
	n := num / den
	cct := 449.0*n*n*n + 3525.0*n*n + 6823.3*n + 5520.33
	return uint16(int32(cct))
}
