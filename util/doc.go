// Package util holds small shared helpers with no domain logic.
package util
