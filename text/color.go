package text

// Legacy formatting codes as understood by Bedrock clients. Bedrock drops a
// couple of Java's legacy codes and adds a few of its own, so only the codes
// known to survive the trip are part of the display order palette below.
const (
	Black       = "§0"
	DarkBlue    = "§1"
	DarkGreen   = "§2"
	DarkAqua    = "§3"
	DarkRed     = "§4"
	DarkPurple  = "§5"
	Gold        = "§6"
	Gray        = "§7"
	DarkGray    = "§8"
	Blue        = "§9"
	Green       = "§a"
	Aqua        = "§b"
	Red         = "§c"
	LightPurple = "§d"
	Yellow      = "§e"
	White       = "§f"

	Obfuscated = "§k"
	Bold       = "§l"
	Italic     = "§o"
	Reset      = "§r"
)

// displayOrder is the fixed palette used to disambiguate sidebar lines that
// share a score. The codes are invisible when appended after a line's text,
// but still take part in the client's lexicographic ordering.
var displayOrder = [...]string{
	Black, DarkBlue, DarkGreen, DarkAqua, DarkRed, DarkPurple, Gold, Gray,
	DarkGray, Blue, Green, Aqua, Red, LightPurple, Yellow, White,
}

// DisplayOrderLen is the number of distinct markers DisplayOrder can produce.
const DisplayOrderLen = len(displayOrder)

// DisplayOrder returns the i-th marker of the palette. The palette is fixed,
// so equal indices always yield equal markers. Indices outside the palette
// indicate a bug in the caller and panic.
func DisplayOrder(i int) string {
	if i < 0 || i >= len(displayOrder) {
		panic("text: display order index out of range")
	}
	return displayOrder[i]
}
