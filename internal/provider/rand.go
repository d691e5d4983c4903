package provider

import "math/rand"

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// randString returns n random lowercase base36 characters, matching the
// opaque identifier shapes issued by the simulated upstreams.
func randString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

func randInt(n int) int {
	return rand.Intn(n)
}
