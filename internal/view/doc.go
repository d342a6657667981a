// Package view holds view models of console screens.
//
// A view model is owned by exactly one screen of one session. It is mutated only
// through transition methods (input change, fetch start, fetch success, fetch failure,
// submit start, submit end) and never performs I/O. Services issue remote calls and feed
// the outcome back through these transitions.
package view
