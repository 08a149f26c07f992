package icons

import (
	"fmt"
	"sort"
)

// typeCodes maps aircraft type designators to catalog ids.
var typeCodes = map[string]string{
	// Airliners
	"A318": "airliner",
	"A319": "airliner",
	"A320": "airliner",
	"A321": "airliner",
	"A330": "airliner",
	"A340": "heavy_4e",
	"A350": "airliner",
	"A380": "heavy_4e",
	"B737": "airliner",
	"B738": "airliner",
	"B739": "airliner",
	"B747": "heavy_4e",
	"B757": "airliner",
	"B767": "airliner",
	"B777": "airliner",
	"B787": "airliner",

	// Regional jets
	"CRJ2": "jet_nonmil",
	"CRJ7": "jet_nonmil",
	"CRJ9": "jet_nonmil",
	"E145": "jet_nonmil",
	"E170": "jet_nonmil",
	"E175": "jet_nonmil",
	"E190": "jet_nonmil",

	// Light aircraft
	"C152": "light_single",
	"C172": "light_single",
	"C182": "light_single",
	"PA28": "light_single",
	"PA34": "light_twin",
	"BE36": "light_single",
	"BE58": "light_twin",
	"DA40": "light_single",
	"DA42": "light_twin",
	"SR22": "light_single",

	// Helicopters
	"R44":  "helicopter",
	"R66":  "helicopter",
	"AS50": "helicopter",
	"EC35": "helicopter",
	"EC45": "helicopter",
	"B407": "helicopter",
	"S76":  "helicopter",

	// Gliders
	"GLID":   "glider",
	"ASK21":  "glider",
	"DG1000": "glider",
}

// categories maps ICAO emitter categories to catalog ids.
// B2 and B3 point at "balloon", which has no shape yet and resolves to the default icon.
var categories = map[string]string{
	"A1": "light_single",   // light, < 15500 lbs
	"A2": "light_twin",     // small, 15500-75000 lbs
	"A3": "airliner",       // large
	"A4": "heavy_4e",       // high vortex large
	"A5": "airliner",       // heavy
	"B1": "glider",         // glider / sailplane
	"B2": "balloon",        // lighter than air
	"B3": "balloon",        // parachutist / skydiver
	"B4": "helicopter",     // ultralight / rotorcraft
	"C1": "ground_vehicle", // surface emergency vehicle
	"C2": "ground_vehicle", // surface service vehicle
	"C3": "tower",          // point obstacle
}

// IconForType returns the catalog id mapped to a type designator.
func IconForType(designator string) (string, bool) {
	id, ok := typeCodes[designator]
	return id, ok
}

// IconForCategory returns the catalog id mapped to an emitter category.
func IconForCategory(category string) (string, bool) {
	id, ok := categories[category]
	return id, ok
}

// TypeCodes returns a copy of the type designator index.
func TypeCodes() map[string]string {
	return copyIndex(typeCodes)
}

// Categories returns a copy of the emitter category index.
func Categories() map[string]string {
	return copyIndex(categories)
}

func copyIndex(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// DanglingRef is an index entry whose icon id has no catalog shape.
type DanglingRef struct {
	Index string // "type" or "category"
	Key   string
	ID    string
}

func (d DanglingRef) String() string {
	return fmt.Sprintf("%s %s -> %s", d.Index, d.Key, d.ID)
}

// CheckIndexes lists every index entry pointing at a missing catalog id,
// sorted by index then key.
func CheckIndexes() []DanglingRef {
	var refs []DanglingRef
	for code, id := range typeCodes {
		if _, ok := catalog[id]; !ok {
			refs = append(refs, DanglingRef{Index: "type", Key: code, ID: id})
		}
	}
	for code, id := range categories {
		if _, ok := catalog[id]; !ok {
			refs = append(refs, DanglingRef{Index: "category", Key: code, ID: id})
		}
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].Index != refs[j].Index {
			return refs[i].Index > refs[j].Index // "type" before "category"
		}
		return refs[i].Key < refs[j].Key
	})
	return refs
}
