// Package domain contains the core entities of the Pokedex: the
// identification result produced for a piece of user text, the chat
// transcript built around those results, and the resource locations derived
// from a National Pokedex number. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
