// Package format names the output formats understood by the encoder and
// the command line: the project file dialect itself, JSON and YAML.
package format
