// Package creature holds the party member record the engine reads and updates.
package creature
