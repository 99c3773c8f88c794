// Package validation provides a fluent field validator that collects
// field errors and folds them into a single AppError. The upload handler
// uses it to check filenames, extensions, and sizes before any work
// starts.
package validation
