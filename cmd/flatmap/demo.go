package main

import (
	"time"

	"flatmap/entity"
	"flatmap/mapping"
	"flatmap/store"
)

// BuildOrderSerializer declares the key layout of store.Order.
func BuildOrderSerializer(opts ...mapping.Option) (*mapping.Serializer[store.Order], error) {
	return mapping.Build(configureOrder, opts...)
}

func configureOrder(b *mapping.ClassBuilder[store.Order]) {
	mapping.Simple(b, mapping.Locate[store.Order, int]("Id"), mapping.Mandatory())
	mapping.Entity(b, mapping.Locate[store.Order, entity.Ref[store.Customer]]("Customer"))
	mapping.Date(mapping.Composite(b, mapping.Locate[store.Order, time.Time]("Placed")))
	mapping.Simple(b, mapping.Locate[store.Order, bool]("Express"))
	mapping.Simple(b, mapping.Locate[store.Order, store.OrderStatus]("Status"))
	mapping.Class(b, mapping.Locate[store.Order, store.Address]("Shipping"), configureAddress)
	mapping.Collection(b, mapping.Locate[store.Order, []store.Line]("Lines"), configureLine)
	mapping.ValueCollection(b, mapping.Locate[store.Order, []string]("Tags"), func(i *mapping.ClassBuilder[string]) {
		mapping.AsSimple(i)
	})
}

func configureAddress(b *mapping.ClassBuilder[store.Address]) {
	mapping.Simple(b, mapping.Locate[store.Address, string]("Street"))
	mapping.Simple(b, mapping.Locate[store.Address, string]("City"))
	mapping.Simple(b, mapping.Locate[store.Address, string]("Zip"), mapping.Is("PostalCode"))
}

func configureLine(b *mapping.ClassBuilder[store.Line]) {
	mapping.Simple(b, mapping.Locate[store.Line, string]("Sku"), mapping.Mandatory())
	mapping.Simple(b, mapping.Locate[store.Line, int]("Qty"))
	mapping.Simple(b, mapping.Locate[store.Line, int64]("PriceCents"))
}
