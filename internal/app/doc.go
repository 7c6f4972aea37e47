// Package app implements the utilkit commands. Each Execute* function takes
// the loaded configuration and command parameters, performs the work with the
// internal packages and writes the result to the given writer.
package app
