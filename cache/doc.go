// Package cache implements a set-associative tag array with a Not-MRU
// (NMRU) victim-selection policy: a small, self-contained algorithmic
// contract independent of the des simulation kernel.
package cache
