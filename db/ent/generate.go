// Command generate regenerates the ent client under gen/ent from the
// schemas in db/ent/schema. Run from the repository root.
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/werb210/ocr-reconciler/gen/ent",
			Schema:  "github.com/werb210/ocr-reconciler/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
