package icons

// Resolve picks the icon for an aircraft. An exact type designator match wins,
// then the emitter category, then the default icon. It never fails: any id
// that does not name a catalog shape degrades to the default.
func Resolve(typeDesignator, category string) IconDefinition {
	if typeDesignator != "" {
		if id, ok := IconForType(typeDesignator); ok {
			if def, ok := Lookup(id); ok {
				return def
			}
		}
	}

	if category != "" {
		if id, ok := IconForCategory(category); ok {
			if def, ok := Lookup(id); ok {
				return def
			}
		}
	}

	return Default()
}
