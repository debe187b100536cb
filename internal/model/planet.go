package model

// Planet is the classical planetary correspondence of a square order.
type Planet string

// Planetary correspondences of orders 3 through 9.
const (
	PlanetNone    Planet = ""
	PlanetSaturn  Planet = "Saturn"
	PlanetJupiter Planet = "Jupiter"
	PlanetMars    Planet = "Mars"
	PlanetSun     Planet = "Sun"
	PlanetVenus   Planet = "Venus"
	PlanetMercury Planet = "Mercury"
	PlanetMoon    Planet = "Moon"
)

var planetsByOrder = map[int]Planet{
	3: PlanetSaturn,
	4: PlanetJupiter,
	5: PlanetMars,
	6: PlanetSun,
	7: PlanetVenus,
	8: PlanetMercury,
	9: PlanetMoon,
}

// PlanetFor returns the planet traditionally associated with order n, or PlanetNone.
func PlanetFor(n int) Planet {
	return planetsByOrder[n]
}
