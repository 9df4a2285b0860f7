package util

import (
	"fmt"

	"fourcardpoker/internal/rng"
)

var adjectives = []string{
	"Bluffing", "Folding", "Raising", "Checking", "Calling", "Shoving", "Limping", "Stacking", "Grinding",
	"Lucky", "Unlucky", "Patient", "Reckless", "Cautious", "Fearless", "Sneaky", "Steady", "Wild", "Tilted",
	"Stoic", "Smiling", "Brooding", "Calculating",
}

var animals = []string{
	"Shark", "Fish", "Donkey", "Whale", "Fox", "Wolf", "Owl", "Rock", "Maniac", "Nit", "Grinder",
	"Eagle", "Rattlesnake", "Coyote", "Badger", "Mule", "Raven", "Viper", "Stallion", "Bulldog",
}

// GetRandomName returns a random table name by combining an adjective with a
// poker archetype
func GetRandomName(r rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[r.Intn(len(adjectives))], animals[r.Intn(len(animals))])
}
