//go:build !dlistdebug

package dlist

const debug = false
