// Package scripts contains the built-in components that scene files can
// attach to objects by name. Importing it registers them.
package scripts
