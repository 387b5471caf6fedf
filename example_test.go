package flatyaml_test

import (
	"fmt"

	"github.com/flatyaml/go-flatyaml"
)

func ExampleParse() {
	doc, err := flatyaml.Parse([]byte("foo:bar\nbaz:zyx\ncount: 5"))
	if err != nil {
		panic(err)
	}

	foo, _ := doc.StringValue("foo")
	count, _ := doc.IntValue("count")

	fmt.Println(foo)
	fmt.Println(count)
	// Output:
	// bar
	// 5
}

func ExampleDocument_List() {
	doc, err := flatyaml.Parse([]byte("- first\n- second\n- third"))
	if err != nil {
		panic(err)
	}

	list, err := doc.List()
	if err != nil {
		panic(err)
	}

	fmt.Println(list.Count())
	for i := 0; i < list.Count(); i++ {
		item, _ := list.StringAt(i)
		fmt.Println(item)
	}
	// Output:
	// 3
	// first
	// second
	// third
}

func ExampleUnmarshal() {
	doc := `
host: localhost
port: 8080
`
	var result map[string]any
	if err := flatyaml.Unmarshal([]byte(doc), &result); err != nil {
		panic(err)
	}

	fmt.Println(result["host"])
	fmt.Println(result["port"])
	// Output:
	// localhost
	// 8080
}

func ExampleMarshal() {
	data := map[string]any{
		"host": "localhost",
		"port": 8080,
	}

	out, err := flatyaml.Marshal(data)
	if err != nil {
		panic(err)
	}

	fmt.Print(string(out))
	// Output:
	// host: localhost
	// port: 8080
}
