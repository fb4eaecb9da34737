// Package resolve checks branch names given on the command line.
//
// A name that does not match a local branch is rejected with up to three
// fuzzy suggestions drawn from the local branches, so that
//
//	git-x sync feat/login
//
// answers with "did you mean feature/login?" instead of a raw git error.
package resolve
