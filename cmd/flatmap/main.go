// Package main provides the flatmap CLI.
//
// flatmap exercises a demonstration mapping for purchase
// orders against flat key/value input:
//   - describe prints the key layout of the mapping
//   - decode reads a query string into an order and dumps it
//   - encode reads an order from YAML and prints its flat keys
//   - check reports keys of a query string no mapping reads
package main

func main() {
	Execute()
}
