package data

// DriverNames is the roster handed to bots configured without a name
var DriverNames = []string{
	"Hunt", "Lauda", "Senna", "Prost", "Mansell", "Piquet", "Clark", "Stewart",
	"Fangio", "Moss", "Hill", "Fittipaldi", "Villeneuve", "Hakkinen", "Alonso",
	"Button", "Vettel", "Raikkonen", "Webber", "Barrichello",
}

// DriverName returns the i-th roster name, wrapping with a numeric suffix once
// the roster runs out
func DriverName(i int) string {
	if i < 0 {
		i = -i
	}
	name := DriverNames[i%len(DriverNames)]
	if round := i / len(DriverNames); round > 0 {
		return name + " " + string(rune('A'+round%26))
	}
	return name
}
