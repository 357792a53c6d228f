package mapping_test

import (
	"time"

	"flatmap/entity"
	"flatmap/mapping"
)

type Customer struct{}

type Inner struct {
	Id   int
	Name string
}

type Address struct {
	Street string
	City   string
}

type Outer struct {
	Id       int
	Name     string
	Active   bool
	TestDate time.Time
	Address  Address
	Customer entity.Ref[Customer]
	Inners   []Inner
	Tags     []string
}

func configureInner(b *mapping.ClassBuilder[Inner]) {
	mapping.Simple(b, mapping.Locate[Inner, int]("Id"))
	mapping.Simple(b, mapping.Locate[Inner, string]("Name"))
}

func configureOuter(b *mapping.ClassBuilder[Outer]) {
	mapping.Simple(b, mapping.Locate[Outer, int]("Id"))
	mapping.Simple(b, mapping.Locate[Outer, string]("Name"))
	mapping.Simple(b, mapping.Field("Active",
		func(o *Outer) bool { return o.Active },
		func(o *Outer, v bool) { o.Active = v }))
	mapping.Date(mapping.Composite(b, mapping.Locate[Outer, time.Time]("TestDate")))
	mapping.Class(b, mapping.Locate[Outer, Address]("Address"), func(a *mapping.ClassBuilder[Address]) {
		mapping.Simple(a, mapping.Locate[Address, string]("Street"))
		mapping.Simple(a, mapping.Locate[Address, string]("City"))
	})
	mapping.Entity(b, mapping.Locate[Outer, entity.Ref[Customer]]("Customer"))
	mapping.Collection(b, mapping.Locate[Outer, []Inner]("Inners"), configureInner)
	mapping.ValueCollection(b, mapping.Locate[Outer, []string]("Tags"), func(t *mapping.ClassBuilder[string]) {
		mapping.AsSimple(t)
	})
}
