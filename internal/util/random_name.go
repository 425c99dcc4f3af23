package util

import (
	"fmt"
	"strings"

	"holdem-server/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Lucky", "Bluffing", "Silent", "Gracious", "Happy", "Grinning", "Stoic",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate",
	"Sly", "Cool", "Patient", "Reckless", "Tight", "Loose",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Lion", "Tiger",
	"Bear", "Otter", "Dolphin", "Porcupine", "Hedgehog", "Snake", "Lizard", "Chipmunk",
	"Eagle", "Okapi", "Wolf", "Fox", "Armadillo", "Rhino", "Panda", "Walrus", "Owl",
}

// codeAlphabet leaves out characters that are easily confused (0/O, 1/I)
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RandomName returns a random display name by combining an adjective with an animal
func RandomName(r rng.Generator) string {
	return fmt.Sprintf("%s %s", adjectives[r.Intn(len(adjectives))], animals[r.Intn(len(animals))])
}

// RoomCode returns a random, human friendly room code of the given length
func RoomCode(r rng.Generator, length int) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteByte(codeAlphabet[r.Intn(len(codeAlphabet))])
	}

	return sb.String()
}
