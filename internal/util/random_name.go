package util

import (
	"fmt"

	"blackjack-trainer/internal/rng"
)

var adjectives = []string{
	"Lucky", "Golden", "Silver", "Velvet", "Neon", "Midnight", "High", "Royal", "Grand", "Prime",
	"Red", "Blue", "Green", "Emerald", "Crimson", "Dusty", "Smoky", "Quiet", "Busy", "Crooked",
}

var places = []string{
	"Horseshoe", "Riverboat", "Saloon", "Parlor", "Lounge", "Oasis", "Strip", "Palace", "Derby",
	"Boardwalk", "Pavilion", "Arcade", "Canyon", "Harbor", "Junction",
}

// RandomTableName returns a name for a practice table by combining an adjective with a place
func RandomTableName(gen rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[gen.Intn(len(adjectives))], places[gen.Intn(len(places))])
}
