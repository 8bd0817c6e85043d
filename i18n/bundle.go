package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrDefaultLanguageNotFound            = errors.New("default " + ErrLanguageNotFound.Error())
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle holds the message catalog used to render diagnostics. Every language other than the
// default must define exactly the keys of the default language.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
	supported    []language.Tag
	matcher      language.Matcher
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the bundle built from the embedded locales.
func Default() *Bundle {
	return defaultBundle
}

// NewBundle builds a fresh bundle from the embedded locales.
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewEmptyBundle returns a bundle with no translations, English being the default language.
func NewEmptyBundle() *Bundle {
	return &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
		matcher:      language.NewMatcher([]language.Tag{language.English}),
	}
}

// NewBundleWithFS loads every <lang>.json file found in dirPrefix. The default language is
// loaded first so the others can be validated against it.
func NewBundleWithFS(fs embed.FS, dirPrefix string) (*Bundle, error) {
	b := NewEmptyBundle()

	entries, err := fs.ReadDir(dirPrefix)
	if err != nil {
		return nil, err
	}

	var deferred []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}
		if lang != b.defaultLang {
			deferred = append(deferred, entry.Name())
			continue
		}
		if err := b.loadFile(fs, lang, path.Join(dirPrefix, entry.Name())); err != nil {
			return nil, err
		}
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	for _, name := range deferred {
		lang := language.MustParse(strings.TrimSuffix(name, ".json"))
		if err := b.loadFile(fs, lang, path.Join(dirPrefix, name)); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// T returns the translation for key in the default language.
func (b *Bundle) T(key string, args ...interface{}) string {
	b.mu.RLock()
	defaultLang := b.defaultLang
	b.mu.RUnlock()

	return b.TL(defaultLang, key, args...)
}

// TL returns the translation for key in the language best matching lang.
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p := b.printerFor(lang); p != nil {
		return p.Sprintf(key, args...)
	}

	return key
}

// AddLanguage adds a language to the bundle or merges translations into an existing one.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	existing := b.translations[lang]
	merged := make(map[string]string, len(existing)+len(translations))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	b.translations[lang] = merged
	if lang != b.defaultLang && existing == nil {
		if errs := b.validateLanguage(lang); len(errs) > 0 {
			delete(b.translations, lang)
			return fmt.Errorf("%w: %s: %v", ErrInvalidTranslations, lang, errors.Join(errs...))
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrFailedToSetString, key, err)
		}
	}

	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))
	if existing == nil {
		b.supported = append(b.supported, lang)
		b.rebuildMatcher()
	}

	return nil
}

// HasLanguage reports whether translations for lang were loaded.
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]

	return exists
}

// Languages returns the loaded languages sorted by tag.
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

// HasKey reports whether key is translated in lang.
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	translations, exists := b.translations[lang]
	if !exists {
		return false
	}
	_, exists = translations[key]

	return exists
}

// Match returns the loaded language closest to lang, or the default language.
func (b *Bundle) Match(lang language.Tag) language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.match(lang)
}

func (b *Bundle) match(lang language.Tag) language.Tag {
	if _, ok := b.translations[lang]; ok {
		return lang
	}
	if len(b.supported) == 0 {
		return b.defaultLang
	}
	_, idx, confidence := b.matcher.Match(lang)
	if confidence == language.No || idx < 0 || idx >= len(b.supported) {
		return b.defaultLang
	}

	return b.supported[idx]
}

func (b *Bundle) printerFor(lang language.Tag) *message.Printer {
	if p, ok := b.printers[b.match(lang)]; ok {
		return p
	}

	return b.printers[b.defaultLang]
}

// rebuildMatcher keeps the default language first so it wins ties.
func (b *Bundle) rebuildMatcher() {
	ordered := make([]language.Tag, 0, len(b.supported))
	ordered = append(ordered, b.defaultLang)
	for _, lang := range b.supported {
		if lang != b.defaultLang {
			ordered = append(ordered, lang)
		}
	}
	b.supported = ordered
	b.matcher = language.NewMatcher(ordered)
}

func (b *Bundle) loadFile(fs embed.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

func (b *Bundle) validateLanguage(lang language.Tag) []error {
	var errs []error

	translations := b.translations[lang]
	if len(translations) == 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrEmptyTranslations, lang))
	}

	defaultTranslations, exists := b.translations[b.defaultLang]
	if !exists {
		return append(errs, fmt.Errorf("%w: %s", ErrDefaultLanguageNotFound, b.defaultLang))
	}

	for key := range defaultTranslations {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrMissingKey, lang, key))
		}
	}
	for key := range translations {
		if _, exists := defaultTranslations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %s: %q", ErrExtraKey, lang, key))
		}
	}

	return errs
}
