package models

// Detail keys permitted for every category.
var commonDetailKeys = []string{
	"selectedServices",
	"occasions",
	"photos",
	"minPrice",
	"maxPrice",
}

// Detail keys permitted per category. Keys outside the allow-list for a
// vendor's category are dropped at write time; the search path never assumes
// they exist.
var categoryDetailKeys = map[string][]string{
	CategoryVenue: {
		"capacity",
		"seatingCapacity",
		"floatingCapacity",
		"diningCapacity",
		"venueType",
		"airConditioning",
		"bridalSuite",
		"guestRooms",
		"parkingCar",
		"parkingBike",
		"valetParking",
		"powerBackup",
		"lift",
		"wheelchair",
		"avEquipment",
		"cateringPolicy",
		"decorPolicy",
		"perPlateVeg",
		"perPlateNonVeg",
	},
	CategoryCatering: {
		"cuisines",
		"dietaryOptions",
		"serviceStyle",
		"liveCounters",
		"liveCounterItems",
		"minGuestCount",
		"fssaiLicense",
		"perPlateVeg",
		"perPlateNonVeg",
	},
	CategoryDecor: {
		"decorThemes",
		"decorOfferings",
		"designVisualization",
		"customizationLevel",
		"inventory",
	},
	CategoryPhotography: {
		"photographyStyles",
		"eventTypes",
		"deliverables",
		"rawFootage",
		"equipment",
		"startingPrice",
	},
	CategoryEntertainment: {
		"performanceType",
		"performanceDuration",
		"teamSize",
		"providedEquipment",
		"travelOutstation",
	},
}

// AllowedDetailKeys returns the set of permitted detail keys for a category.
func AllowedDetailKeys(category string) map[string]bool {
	allowed := make(map[string]bool, len(commonDetailKeys))
	for _, k := range commonDetailKeys {
		allowed[k] = true
	}
	for _, k := range categoryDetailKeys[category] {
		allowed[k] = true
	}
	return allowed
}

// FilterDetails drops detail keys outside the allow-list for the category.
// Unknown categories keep only the common keys.
func FilterDetails(category string, details Details) Details {
	if details == nil {
		return nil
	}
	allowed := AllowedDetailKeys(category)
	filtered := make(Details, len(details))
	for k, v := range details {
		if allowed[k] {
			filtered[k] = v
		}
	}
	return filtered
}
