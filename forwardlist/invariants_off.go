//go:build !invariants && !race

package forwardlist

const invariantsEnabled = false

const ownershipChecksEnabled = false
