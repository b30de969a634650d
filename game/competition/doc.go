// Package competition organizes entities into mock races. Each
// competition sequences movement actions across its entrants and scores
// the outcomes; a failed leg costs points but never aborts the event.
//
// Entry requirements are expressed two ways. The homogeneous events
// (triathlon, relay, vehicle race) constrain entrants at compile time
// through composite interfaces. The unified race accepts heterogeneous
// rosters built at run time, so it checks each entrant's capability
// profile and rejects ineligible ones with an EligibilityError.
package competition
