// Package text holds the player-facing message catalog.
package text

import (
	_ "embed"
	"sync"

	"github.com/leonelquinteros/gotext"
)

//go:embed locales/en.po
var enPO []byte

var (
	catalog *gotext.Po
	once    sync.Once
)

func load() *gotext.Po {
	once.Do(func() {
		catalog = gotext.NewPo()
		catalog.Parse(enPO)
	})
	return catalog
}

// Get returns the message for key, formatted with args. Unknown keys are
// returned unchanged so untranslated strings still read.
func Get(key string, args ...any) string {
	return load().Get(key, args...)
}

// Has reports whether key is in the catalog
func Has(key string) bool {
	return load().IsTranslated(key)
}
