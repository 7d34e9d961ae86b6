//go:build race && !invariants

package forwardlist

const invariantsEnabled = true

const ownershipChecksEnabled = false
