package gen

import (
	"embed"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

func mustTemplate(name string) string {
	data, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		panic(err)
	}

	return string(data)
}
