// Package nameindex implements the bidirectional name/catalog-index
// mapping that stellar classification is stored alongside: case-insensitive
// name lookup with a localization overlay, and Bayer-designation Greek
// letter expansion.
package nameindex

import "strings"

// Index identifies a catalog entry. The zero value is a valid index; use
// NotFound to test lookup failure.
type Index uint32

// NotFound is returned by LookupByName when no entry matches.
const NotFound Index = ^Index(0)

// Database holds the name-to-index and index-to-name mappings for one
// catalog. The zero value is ready to use.
type Database struct {
	nameKeyToIndex        map[string]Index
	nameKeyToDisplay      map[string]string
	localizedKeyToIndex   map[string]Index
	localizedKeyToDisplay map[string]string
	indexToNames          map[Index][]string
}

// New returns an empty Database.
func New() *Database {
	return &Database{
		nameKeyToIndex:        make(map[string]Index),
		nameKeyToDisplay:      make(map[string]string),
		localizedKeyToIndex:   make(map[string]Index),
		localizedKeyToDisplay: make(map[string]string),
		indexToNames:          make(map[Index][]string),
	}
}

func (d *Database) lazyInit() {
	if d.nameKeyToIndex == nil {
		*d = *New()
	}
}

// Add registers name as a display name for index. If parseGreek is true and
// name begins with a recognized Bayer abbreviation ("Alf",
// "Bet", ...), the Greek-letter-expanded form is also registered and
// recorded as an additional display name for index.
func (d *Database) Add(index Index, name string, parseGreek bool) {
	d.lazyInit()
	if name == "" {
		return
	}
	d.addOne(index, name)
	if parseGreek {
		if expanded, ok := expandGreekPrefix(name); ok && !strings.EqualFold(expanded, name) {
			d.addOne(index, expanded)
		}
	}
}

// AddLocalized registers name in the localized overlay consulted first by
// LookupByName and GetCompletion when i18n is requested.
func (d *Database) AddLocalized(index Index, name string) {
	d.lazyInit()
	if name == "" {
		return
	}
	key := strings.ToLower(name)
	d.localizedKeyToIndex[key] = index
	d.localizedKeyToDisplay[key] = name
}

func (d *Database) addOne(index Index, name string) {
	key := strings.ToLower(name)
	if _, exists := d.nameKeyToIndex[key]; !exists {
		d.indexToNames[index] = append(d.indexToNames[index], name)
	}
	d.nameKeyToIndex[key] = index
	d.nameKeyToDisplay[key] = name
}

// Erase removes every name registered for index, from both the plain and
// localized indexes.
func (d *Database) Erase(index Index) {
	d.lazyInit()
	delete(d.indexToNames, index)
	for k, v := range d.nameKeyToIndex {
		if v == index {
			delete(d.nameKeyToIndex, k)
			delete(d.nameKeyToDisplay, k)
		}
	}
	for k, v := range d.localizedKeyToIndex {
		if v == index {
			delete(d.localizedKeyToIndex, k)
			delete(d.localizedKeyToDisplay, k)
		}
	}
}

// LookupByName resolves name to its catalog index, case-insensitively. When
// i18n is true the localized overlay is consulted first.
func (d *Database) LookupByName(name string, i18n bool) (Index, bool) {
	d.lazyInit()
	key := strings.ToLower(name)
	if i18n {
		if idx, ok := d.localizedKeyToIndex[key]; ok {
			return idx, true
		}
	}
	idx, ok := d.nameKeyToIndex[key]
	return idx, ok
}

// LookupByIndex returns the primary (first-registered) display name for
// index, or "" if none is registered.
func (d *Database) LookupByIndex(index Index) string {
	d.lazyInit()
	names := d.indexToNames[index]
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// IterateNamesForIndex returns a lazy sequence over every display name
// registered for index, in registration order.
func (d *Database) IterateNamesForIndex(index Index) func(yield func(string) bool) {
	d.lazyInit()
	names := d.indexToNames[index]
	return func(yield func(string) bool) {
		for _, n := range names {
			if !yield(n) {
				return
			}
		}
	}
}

// NameCount returns the number of distinct display names registered.
func (d *Database) NameCount() int {
	d.lazyInit()
	return len(d.nameKeyToIndex)
}
