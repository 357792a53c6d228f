package mapping_test

import (
	"fmt"
	"time"

	"flatmap/mapping"
)

type Order struct {
	Id     int
	Placed time.Time
	Lines  []Line
}

type Line struct {
	Sku string
	Qty int
}

func Example() {
	s := mapping.MustBuild(func(b *mapping.ClassBuilder[Order]) {
		mapping.Simple(b, mapping.Locate[Order, int]("Id"), mapping.Mandatory())
		mapping.Date(mapping.Composite(b, mapping.Locate[Order, time.Time]("Placed")))
		mapping.Collection(b, mapping.Locate[Order, []Line]("Lines"), func(l *mapping.ClassBuilder[Line]) {
			mapping.Simple(l, mapping.Locate[Line, string]("Sku"))
			mapping.Simple(l, mapping.Locate[Line, int]("Qty"))
		})
	})

	store, err := mapping.ParseStore("Id=12&PlacedYear=2024&PlacedMonth=2&PlacedDay=29&Lines[0].Sku=A-1&Lines[0].Qty=3&Lines[1].Sku=B-2")
	if err != nil {
		panic(err)
	}

	order, err := s.Deserialize(store)
	fmt.Println(err)
	fmt.Println(order.Id, order.Placed.Format(time.DateOnly), order.Lines)

	out, _ := s.Serialize(order)
	fmt.Println(out.Encode())

	// Output:
	// <nil>
	// 12 2024-02-29 [{A-1 3} {B-2 0}]
	// Id=12&Lines%5B0%5D.Qty=3&Lines%5B0%5D.Sku=A-1&Lines%5B1%5D.Qty=0&Lines%5B1%5D.Sku=B-2&PlacedDay=29&PlacedMonth=2&PlacedYear=2024
}

func ExampleBuildCollection() {
	s, err := mapping.BuildCollection(func(b *mapping.ClassBuilder[time.Time]) {
		mapping.Date(mapping.AsComposite(b))
	})
	if err != nil {
		panic(err)
	}

	dates, err := s.Deserialize(mapping.Store{"[0]Year": "2010", "[0]Month": "1", "[0]Day": "1"})
	fmt.Println(err, len(dates), dates[0].Format(time.DateOnly))

	// Output:
	// <nil> 1 2010-01-01
}

func ExampleSerializer_Layout() {
	s := mapping.MustBuild(func(b *mapping.ClassBuilder[Order]) {
		mapping.Simple(b, mapping.Locate[Order, int]("Id"), mapping.Mandatory())
		mapping.Date(mapping.Composite(b, mapping.Locate[Order, time.Time]("Placed")))
	})

	fmt.Print(s.Layout())

	// Output:
	// Id (simple, mandatory)
	// PlacedYear (component, mandatory)
	// PlacedMonth (component, mandatory)
	// PlacedDay (component, mandatory)
}
