// Package keyfile provides the YAML override file of the scaffold.
//
// Struct tags are not always available (generated or third-party models),
// so the keys of a scaffold can also be pinned from a file:
//
//	version: "1"
//	types:
//	  - type: store.Address
//	    keys:
//	      Zip: PostalCode
//	  - type: store.Order
//	    mandatory: [Id, Placed]
//	    ignore: Coupon
//
// Entries win over `flat` struct tags. Types may be written as "Order",
// "store.Order" or "flatmap/store.Order".
package keyfile
