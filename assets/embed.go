package assets

import (
	"embed"
)

//go:embed banner.txt rules.txt
var FS embed.FS

func readText(name string) string {
	b, err := FS.ReadFile(name)
	if err != nil {
		// Both files are embedded at build time.
		panic(err)
	}
	return string(b)
}

// Banner is the welcome screen.
func Banner() string {
	return readText("banner.txt")
}

// Rules is the rules screen shown before the first game.
func Rules() string {
	return readText("rules.txt")
}
