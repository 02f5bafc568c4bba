package services

// AllowedUnits is the fixed unit whitelist for materials. Free-form material
// creation and unit updates must pick from this list.
var AllowedUnits = []string{
	"kg",
	"L",
	"pieces",
	"m",
	"m²",
	"bags",
	"tonnes",
	"cubic m",
	"boxes",
	"rolls",
}

var allowedUnitSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(AllowedUnits))
	for _, unit := range AllowedUnits {
		set[unit] = struct{}{}
	}
	return set
}()

func IsAllowedUnit(unit string) bool {
	_, ok := allowedUnitSet[unit]
	return ok
}
