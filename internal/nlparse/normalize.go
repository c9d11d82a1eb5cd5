package nlparse

import "strings"

// normalize prepares Arabic text for matching: tashkeel and tatweel are
// stripped, alef/teh-marbuta/yaa variants unified, Arabic-Indic digits
// converted to ASCII, and whitespace collapsed.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range text {
		switch {
		// Tashkeel (fathatan through sukun) and tatweel.
		case r >= 0x064B && r <= 0x0652, r == 0x0640:
			continue
		// Alef variants.
		case r == 'أ', r == 'إ', r == 'آ':
			b.WriteRune('ا')
		// Teh marbuta.
		case r == 'ة':
			b.WriteRune('ه')
		// Alef maqsura.
		case r == 'ى':
			b.WriteRune('ي')
		// Arabic-Indic digits.
		case r >= 0x0660 && r <= 0x0669:
			b.WriteRune('0' + (r - 0x0660))
		// Extended (Persian-style) digits.
		case r >= 0x06F0 && r <= 0x06F9:
			b.WriteRune('0' + (r - 0x06F0))
		case r == '؟', r == '،', r == '.', r == ',', r == '?':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
