// Package profile holds the view-independent logic behind the profile page:
// masking of personal data, date and price formatting, merging and validating
// profile edits, and deriving the ticket history shown to the user.
//
// Everything here is pure. The tui package owns the state and the I/O.
package profile
