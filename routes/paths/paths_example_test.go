package paths

import "fmt"

func ExampleNew() {
	p := New("JFK", "ORD")

	fmt.Println(p)

	// Output:
	// JFK -> ORD
}

func ExamplePath_Length() {
	p := New("JFK")

	fmt.Println(p.Length(), p.Hops())
	p = p.Append("ORD")
	fmt.Println(p.Length(), p.Hops())
	p = p.Append("SFO")
	fmt.Println(p.Length(), p.Hops())

	// Output:
	// 1 0
	// 2 1
	// 3 2
}

func ExamplePath_Node() {
	p := New("JFK", "ORD", "SFO")

	for i := 0; i < p.Length(); i++ {
		fmt.Println(p.Node(i))
	}

	// Output:
	// JFK
	// ORD
	// SFO
}

func ExamplePath_Append() {
	p := New("JFK", "ORD")
	q := p.Append("SFO", "LAX")

	fmt.Println(p)
	fmt.Println(q)

	// Output:
	// JFK -> ORD
	// JFK -> ORD -> SFO -> LAX
}

func ExamplePath_Origin() {
	p := New("JFK", "ORD", "SFO")
	var empty Path

	fmt.Printf("%q %q\n", p.Origin(), p.Destination())
	fmt.Printf("%q %q\n", empty.Origin(), empty.Destination())

	// Output:
	// "JFK" "SFO"
	// "" ""
}
