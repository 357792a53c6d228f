// Package entity provides identity wrappers for domain entities and the
// codecs that turn them into the single string a flat key carries.
//
// A Ref[E] names one entity of type E by its UUID without loading it:
//
//	type Order struct {
//	    Customer entity.Ref[Customer]
//	}
//
// Mappings built with mapping.Entity read and write the identity through a
// Codec; UUIDCodec is the default.
package entity
