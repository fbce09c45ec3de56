package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
)

// Bundle holds the message templates used by errors and other user-facing text.
// Only the default language is loaded; messages can be overridden with AddMessages.
type Bundle struct {
	mu           sync.RWMutex
	lang         language.Tag
	translations map[string]string
	catalog      *catalog.Builder
	printer      *message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the bundle backed by the embedded English messages
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded from the embedded messages
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewBundleWithFS loads <dir>/en.json from fsys
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := &Bundle{
		lang:         language.English,
		translations: make(map[string]string),
		catalog:      catalog.NewBuilder(),
	}

	data, err := fs.ReadFile(fsys, path.Join(dir, b.lang.String()+".json"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDefaultLanguageTranslationsMissing, b.lang, err)
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return nil, err
	}
	if len(translations) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTranslations, b.lang)
	}

	if err := b.AddMessages(translations); err != nil {
		return nil, err
	}

	return b, nil
}

// AddMessages adds or replaces message templates
func (b *Bundle) AddMessages(translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, value := range translations {
		if err := b.catalog.SetString(b.lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
		}
		b.translations[key] = value
	}

	b.printer = message.NewPrinter(b.lang, message.Catalog(b.catalog))
	return nil
}

// T returns the formatted message for key. Unknown keys are returned as-is.
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.translations[key]; !ok || b.printer == nil {
		return key
	}

	return b.printer.Sprintf(key, args...)
}

// GetMessage returns the unformatted template for key, or key when missing
func (b *Bundle) GetMessage(key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.translations[key]; ok {
		return msg
	}

	return key
}

// HasKey checks if a message template exists
func (b *Bundle) HasKey(key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.translations[key]
	return ok
}

// Keys returns all known keys, sorted
func (b *Bundle) Keys() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	keys := make([]string, 0, len(b.translations))
	for k := range b.translations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Language returns the language of the bundle
func (b *Bundle) Language() language.Tag {
	return b.lang
}
