// Package dispatch routes one subcommand token to one test-orchestration
// script under the suite root. The route set is fixed: eight simple routes
// whose names double as script names, the ALL regression batch, and the
// SHELL escape hatch. The dispatcher itself interprets nothing a script
// reports; it only relays exit statuses to the process's caller.
package dispatch
