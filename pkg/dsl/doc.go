/*
Package dsl provides a fluent builder for constructing menu graphs in Go.

It is an alternative to graph files for tests, demos and menus generated at
runtime. Option keys are normalized on the way in, so a key written as " SÍ "
matches the input "sí".

Example usage:

	b := dsl.New("hola")

	b.Add("hola").
		Say("Bienvenido\n1️⃣ Cursos\n2️⃣ Salir").
		On("1", "cursos").
		On("2", "adios")

	b.Add("cursos").
		Say("Tenemos cursos de enfermería. ¿Volver? (sí/no)").
		Yes("hola").
		No("adios")

	b.Add("adios").Say("¡Hasta pronto!")

	loader, err := b.Build()
	// ... pass loader to minerva.New(minerva.WithLoader(loader))
*/
package dsl
