// Package resolvers holds the asset resolvers the sheet builder looks
// proficiencies up through: in-memory, a directory of asset documents, the
// dnd5e api, a Redis cache in front of any of them, and a chain that falls
// through on misses.
package resolvers
