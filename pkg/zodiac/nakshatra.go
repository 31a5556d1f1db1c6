package zodiac

// NakshatraWidth is the angular width of one lunar mansion in degrees (13°20′).
const NakshatraWidth = 360.0 / 27.0

// PadaWidth is the angular width of one pada in degrees (3°20′).
const PadaWidth = 360.0 / 108.0

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// NakshatraName returns the name of the nakshatra with the given index.
func NakshatraName(index int) string {
	if index < 0 || index > 26 {
		return "Unknown"
	}
	return nakshatraNames[index]
}
