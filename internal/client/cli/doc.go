// Package cli implements siegectl, an interactive shell over the
// SiegeService API.
//
// Commands
//
//	login                        read an access token without echo
//	vault                        show the vault
//	collect                      collect pending generator PP
//	upgrade <kind>               capacity, shield or generator
//	attack <target> <move> [card]
//	use <move|-> [card]          self-targeted move and/or card
//	moves                        list moves with mastery
//	unlock|mastery|reset <move>
//	equip|unequip <artifact>
//	left                         moves remaining today
//	progress                     daily challenge progress
//	restore <player> <count>     admin token only
//	grant <player> <card>        admin token only
//	exit | quit
package cli
