// Package roster loads competition line-ups from YAML. A roster names
// the competition, the entrants with their construction attributes, and
// the teams for team events; the factory turns validated specs into
// live animals and vehicles.
package roster
